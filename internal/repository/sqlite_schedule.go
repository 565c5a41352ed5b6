package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

const scheduleColumns = `id, label, days, start_minute, duration_min, enabled, created_at, updated_at`

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.FocusSchedule) error {
	query := `INSERT INTO focus_schedules (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Label,
		int(s.Days),
		s.StartMinute,
		s.DurationMin,
		boolToInt(s.Enabled),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.FocusSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM focus_schedules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSchedule(row)
}

func (r *SQLiteScheduleRepo) List(ctx context.Context, enabledOnly bool) ([]*domain.FocusSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM focus_schedules`
	if enabledOnly {
		query += ` WHERE enabled = 1`
	}
	query += ` ORDER BY start_minute, label`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing focus schedules: %w", err)
	}
	defer rows.Close()
	return r.scanSchedules(rows)
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, s *domain.FocusSchedule) error {
	query := `UPDATE focus_schedules
		SET label = ?, days = ?, start_minute = ?, duration_min = ?, enabled = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Label,
		int(s.Days),
		s.StartMinute,
		s.DurationMin,
		boolToInt(s.Enabled),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating focus schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating focus schedule: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("focus schedule %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM focus_schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting focus schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting focus schedule: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("focus schedule %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) scanSchedule(row *sql.Row) (*domain.FocusSchedule, error) {
	var s domain.FocusSchedule
	var days, enabled int
	var createdStr, updatedStr string

	err := row.Scan(&s.ID, &s.Label, &days, &s.StartMinute, &s.DurationMin, &enabled, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("focus schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning focus schedule: %w", err)
	}

	return r.populateSchedule(&s, days, enabled, createdStr, updatedStr)
}

func (r *SQLiteScheduleRepo) scanSchedules(rows *sql.Rows) ([]*domain.FocusSchedule, error) {
	var schedules []*domain.FocusSchedule
	for rows.Next() {
		var s domain.FocusSchedule
		var days, enabled int
		var createdStr, updatedStr string

		if err := rows.Scan(&s.ID, &s.Label, &days, &s.StartMinute, &s.DurationMin, &enabled, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning focus schedule row: %w", err)
		}

		schedule, parseErr := r.populateSchedule(&s, days, enabled, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus schedules: %w", err)
	}
	return schedules, nil
}

func (r *SQLiteScheduleRepo) populateSchedule(s *domain.FocusSchedule, days, enabled int, createdStr, updatedStr string) (*domain.FocusSchedule, error) {
	s.Days = domain.Weekdays(days)
	s.Enabled = intToBool(enabled)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
