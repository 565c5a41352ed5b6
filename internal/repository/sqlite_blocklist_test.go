package repository

import (
	"context"
	"testing"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocklistRepo_CreateAndList(t *testing.T) {
	repo := NewSQLiteBlocklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	app := testutil.NewTestBlocklistEntry("com.instagram.android")
	site := testutil.NewTestBlocklistEntry("reddit.com", testutil.WithBlockKind(domain.BlockSite))
	require.NoError(t, repo.Create(ctx, app))
	require.NoError(t, repo.Create(ctx, site))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	apps, err := repo.ListByKind(ctx, domain.BlockApp)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "com.instagram.android", apps[0].Pattern)
}

func TestBlocklistRepo_DuplicateRejected(t *testing.T) {
	repo := NewSQLiteBlocklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestBlocklistEntry("tiktok.com", testutil.WithBlockKind(domain.BlockSite))))
	err := repo.Create(ctx, testutil.NewTestBlocklistEntry("tiktok.com", testutil.WithBlockKind(domain.BlockSite)))
	assert.Error(t, err, "same kind+pattern twice violates the unique constraint")
}

func TestBlocklistRepo_Delete(t *testing.T) {
	repo := NewSQLiteBlocklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestBlocklistEntry("x.com", testutil.WithBlockKind(domain.BlockSite))
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	err := repo.Delete(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
