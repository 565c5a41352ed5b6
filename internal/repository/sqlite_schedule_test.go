package repository

import (
	"context"
	"testing"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	days := domain.Weekdays(0).With(time.Monday).With(time.Friday)
	sched := testutil.NewTestSchedule("Morning deep work", 9*60, 90, testutil.WithDays(days))
	require.NoError(t, repo.Create(ctx, sched))

	fetched, err := repo.GetByID(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning deep work", fetched.Label)
	assert.Equal(t, 9*60, fetched.StartMinute)
	assert.Equal(t, 90, fetched.DurationMin)
	assert.True(t, fetched.Enabled)
	assert.True(t, fetched.Days.Has(time.Monday))
	assert.True(t, fetched.Days.Has(time.Friday))
	assert.False(t, fetched.Days.Has(time.Sunday))
}

func TestScheduleRepo_List_EnabledOnly(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	on := testutil.NewTestSchedule("On", 8*60, 60)
	off := testutil.NewTestSchedule("Off", 20*60, 30, testutil.WithDisabled())
	require.NoError(t, repo.Create(ctx, on))
	require.NoError(t, repo.Create(ctx, off))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, on.ID, enabled[0].ID)
}

func TestScheduleRepo_Update(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sched := testutil.NewTestSchedule("Evening", 19*60, 45)
	require.NoError(t, repo.Create(ctx, sched))

	sched.DurationMin = 60
	sched.Enabled = false
	sched.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, sched))

	fetched, err := repo.GetByID(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, fetched.DurationMin)
	assert.False(t, fetched.Enabled)
}

func TestScheduleRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))

	sched := testutil.NewTestSchedule("Ghost", 10*60, 30)
	err := repo.Update(context.Background(), sched)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_Delete(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sched := testutil.NewTestSchedule("Gone", 12*60, 30)
	require.NoError(t, repo.Create(ctx, sched))
	require.NoError(t, repo.Delete(ctx, sched.ID))

	_, err := repo.GetByID(ctx, sched.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, sched.ID), ErrNotFound)
}
