package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. The DBTX may be a
// *sql.DB or a transaction obtained from a UnitOfWork.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, start_time, end_time, duration_min, actual_seconds, stop_reason, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		s.DurationMin,
		s.ActualSeconds,
		string(s.StopReason),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Finalize(ctx context.Context, s *domain.FocusSession) error {
	if s.EndTime == nil {
		return fmt.Errorf("finalizing session %s: end time not set", s.ID)
	}
	query := `UPDATE focus_sessions
		SET end_time = ?, actual_seconds = ?, stop_reason = ?
		WHERE id = ? AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		s.EndTime.Format(time.RFC3339),
		s.ActualSeconds,
		string(s.StopReason),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("finalizing focus session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalizing focus session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("active focus session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context) (*domain.FocusSession, int, error) {
	query := `SELECT ` + sessionColumns + `
		FROM focus_sessions WHERE end_time IS NULL
		ORDER BY start_time DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("querying active focus session: %w", err)
	}
	defer rows.Close()

	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}
	if len(sessions) == 0 {
		return nil, 0, nil
	}
	// Most recently started row wins; extras are a data-integrity problem
	// reported to the caller, never merged.
	return sessions[0], len(sessions) - 1, nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM focus_sessions
		ORDER BY start_time DESC, created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent focus sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM focus_sessions
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing focus sessions in range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM focus_sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting focus session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.FocusSession, error) {
	var s domain.FocusSession
	var startStr, createdStr, reason string
	var endStr sql.NullString

	err := row.Scan(
		&s.ID, &startStr, &endStr, &s.DurationMin, &s.ActualSeconds, &reason, &createdStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("focus session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}

	return r.populateSession(&s, startStr, endStr, reason, createdStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	for rows.Next() {
		var s domain.FocusSession
		var startStr, createdStr, reason string
		var endStr sql.NullString

		err := rows.Scan(
			&s.ID, &startStr, &endStr, &s.DurationMin, &s.ActualSeconds, &reason, &createdStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning focus session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startStr, endStr, reason, createdStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a FocusSession after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.FocusSession, startStr string, endStr sql.NullString, reason, createdStr string) (*domain.FocusSession, error) {
	var parseErr error
	s.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	s.EndTime = parseNullableTime(endStr, time.RFC3339)
	s.StopReason = domain.StopReason(reason)
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return s, nil
}
