package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Callers should wrap it with context identifying the entity.
var ErrNotFound = errors.New("not found")
