package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// SQLiteBlocklistRepo implements BlocklistRepo using a SQLite database.
type SQLiteBlocklistRepo struct {
	db db.DBTX
}

// NewSQLiteBlocklistRepo creates a new SQLiteBlocklistRepo.
func NewSQLiteBlocklistRepo(db db.DBTX) *SQLiteBlocklistRepo {
	return &SQLiteBlocklistRepo{db: db}
}

func (r *SQLiteBlocklistRepo) Create(ctx context.Context, e *domain.BlocklistEntry) error {
	query := `INSERT INTO blocklist_entries (id, kind, pattern, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Kind),
		e.Pattern,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting blocklist entry: %w", err)
	}
	return nil
}

func (r *SQLiteBlocklistRepo) List(ctx context.Context) ([]*domain.BlocklistEntry, error) {
	query := `SELECT id, kind, pattern, created_at FROM blocklist_entries ORDER BY kind, pattern`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing blocklist entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteBlocklistRepo) ListByKind(ctx context.Context, kind domain.BlockKind) ([]*domain.BlocklistEntry, error) {
	query := `SELECT id, kind, pattern, created_at FROM blocklist_entries WHERE kind = ? ORDER BY pattern`
	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing blocklist entries by kind: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteBlocklistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocklist_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blocklist entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting blocklist entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("blocklist entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBlocklistRepo) scanEntries(rows *sql.Rows) ([]*domain.BlocklistEntry, error) {
	var entries []*domain.BlocklistEntry
	for rows.Next() {
		var e domain.BlocklistEntry
		var kind, createdStr string

		if err := rows.Scan(&e.ID, &kind, &e.Pattern, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning blocklist row: %w", err)
		}
		e.Kind = domain.BlockKind(kind)

		var parseErr error
		e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}

		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocklist entries: %w", err)
	}
	return entries, nil
}
