package domain

import "time"

// BlocklistEntry is one app or website pattern blocked while a focus
// session is active. Enforcement is performed by an external collaborator;
// this record only describes what should be blocked.
type BlocklistEntry struct {
	ID        string
	Kind      BlockKind
	Pattern   string
	CreatedAt time.Time
}
