package service

import (
	"context"
	"testing"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListRecent_DefaultLimit(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewHistoryService(sessions)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 25; i++ {
		started := now.Add(-time.Duration(i+1) * time.Hour)
		seedFinished(t, sessions, started, 25, 1500, domain.StopExpired)
	}

	list, err := svc.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 20, "non-positive limit falls back to the default page size")

	list, err = svc.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestHistoryDelete(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewHistoryService(sessions)
	ctx := context.Background()

	now := time.Now().UTC()
	s := testutil.NewTestSession(25,
		testutil.WithStartedAt(now.Add(-time.Hour)),
		testutil.WithFinalized(now.Add(-35*time.Minute), domain.StopExpired),
	)
	require.NoError(t, sessions.Create(ctx, s))

	require.NoError(t, svc.Delete(ctx, s.ID))

	_, err := svc.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
