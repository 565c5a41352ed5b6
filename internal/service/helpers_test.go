package service

import (
	"testing"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteSessionRepo, *repository.SQLiteBlocklistRepo, *repository.SQLiteScheduleRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteBlocklistRepo(database),
		repository.NewSQLiteScheduleRepo(database)
}
