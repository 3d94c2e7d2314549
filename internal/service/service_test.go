package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/campus/internal/catalog"
	"github.com/alexanderramin/campus/internal/repository"
	"github.com/alexanderramin/campus/internal/testutil"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

type importFixture struct {
	db    *sql.DB
	cat   *catalog.Catalog
	svc   ImportService
	items *repository.SQLiteItemRepo
	logs  *bytes.Buffer
}

func setupImport(t *testing.T) importFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := loadCatalog(t)
	logs := &bytes.Buffer{}
	svc := NewImportService(
		testutil.NewTestUoW(database),
		repository.NewSQLiteImportRepo(database),
		cat,
		NewLogUseCaseObserver(logs),
	)
	return importFixture{
		db:    database,
		cat:   cat,
		svc:   svc,
		items: repository.NewSQLiteItemRepo(database),
		logs:  logs,
	}
}

func (f importFixture) listPage(t *testing.T, page string) []string {
	t.Helper()
	items, err := f.items.ListByPage(context.Background(), page)
	require.NoError(t, err)
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return titles
}
