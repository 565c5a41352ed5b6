package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
)

// Keys under which the recovery checkpoint is stored in app_state.
const (
	stateKeyCheckpointStart     = "checkpoint_start"
	stateKeyCheckpointRemaining = "checkpoint_remaining"
)

// SQLiteStateRepo implements StateRepo over the app_state key/value table.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(db db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db}
}

func (r *SQLiteStateRepo) SaveCheckpoint(ctx context.Context, cp Checkpoint) error {
	if err := r.set(ctx, stateKeyCheckpointStart, cp.StartTime.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving checkpoint start: %w", err)
	}
	if err := r.set(ctx, stateKeyCheckpointRemaining, strconv.Itoa(cp.RemainingSeconds)); err != nil {
		return fmt.Errorf("saving checkpoint remaining: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepo) LoadCheckpoint(ctx context.Context) (*Checkpoint, error) {
	startStr, ok, err := r.get(ctx, stateKeyCheckpointStart)
	if err != nil {
		return nil, fmt.Errorf("loading checkpoint start: %w", err)
	}
	if !ok {
		return nil, nil
	}
	remainingStr, ok, err := r.get(ctx, stateKeyCheckpointRemaining)
	if err != nil {
		return nil, fmt.Errorf("loading checkpoint remaining: %w", err)
	}
	if !ok {
		return nil, nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing checkpoint start: %w", err)
	}
	remaining, err := strconv.Atoi(remainingStr)
	if err != nil {
		return nil, fmt.Errorf("parsing checkpoint remaining: %w", err)
	}

	return &Checkpoint{StartTime: start, RemainingSeconds: remaining}, nil
}

func (r *SQLiteStateRepo) ClearCheckpoint(ctx context.Context) error {
	query := `DELETE FROM app_state WHERE key IN (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, stateKeyCheckpointStart, stateKeyCheckpointRemaining); err != nil {
		return fmt.Errorf("clearing checkpoint: %w", err)
	}
	return nil
}

func (r *SQLiteStateRepo) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}

func (r *SQLiteStateRepo) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
