package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/importer"
	"github.com/alexanderramin/campus/internal/provider"
	"github.com/alexanderramin/campus/internal/repository"
	"github.com/alexanderramin/campus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const clubsYAML = `items:
  - id: c1
    page: clubs
    category: Technical
    title: Robotics Club
    status: Member
    numbers: {hours: 12}
  - id: c2
    page: clubs
    category: Sports
    title: Chess Club
    status: Applied
  - id: s1
    page: store
    category: Books
    title: Data Structures in Go
    status: In Stock
    numbers: {price: 650}
`

func TestImportFile_YAML(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	res, err := f.svc.ImportFile(ctx, writeDataset(t, "campus.yaml", clubsYAML), false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Record.ItemCount)
	assert.Equal(t, "campus.yaml", res.Record.Source)
	assert.Equal(t, "yaml", res.Record.Format)
	assert.NotEmpty(t, res.Record.ID)
	assert.Equal(t, map[string]int{"clubs": 2, "store": 1}, res.PerPage)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, []string{"Robotics Club", "Chess Club"}, f.listPage(t, "clubs"))
	it, err := f.items.GetByID(ctx, "clubs", "c1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, it.Number("hours"))

	history, err := f.svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, res.Record.ID, history[0].ID)
	assert.Contains(t, f.logs.String(), "use_case=import-dataset")
}

func TestImportFile_JSONC(t *testing.T) {
	f := setupImport(t)

	path := writeDataset(t, "fees.jsonc", `{
  // semester dues
  "items": [
    {"page": "fees", "category": "Exam", "title": "Supplementary exam", "numbers": {"amount": 1500, "paid": 0}},
  ]
}`)
	res, err := f.svc.ImportFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, "jsonc", res.Record.Format)
	assert.Equal(t, []string{"Supplementary exam"}, f.listPage(t, "fees"))
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	f := setupImport(t)

	_, err := f.svc.ImportFile(context.Background(), writeDataset(t, "data.csv", "page,title\n"), false)
	assert.Error(t, err)
}

func TestImportDataset_AppendsAfterExisting(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	_, err := f.svc.ImportFile(ctx, writeDataset(t, "a.yaml", clubsYAML), false)
	require.NoError(t, err)

	ds := &importer.Dataset{Items: []importer.ItemImport{
		testutil.NewTestImportItem("clubs", "Cultural", "Music Society"),
	}}
	res, err := f.svc.ImportDataset(ctx, ds, "inline", importer.FormatYAML, false)
	require.NoError(t, err)
	assert.Zero(t, res.Deleted)
	assert.Equal(t, []string{"Robotics Club", "Chess Club", "Music Society"}, f.listPage(t, "clubs"))
}

func TestImportDataset_ReplaceOnlyTouchesNamedPages(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	_, err := f.svc.ImportFile(ctx, writeDataset(t, "a.yaml", clubsYAML), false)
	require.NoError(t, err)

	ds := &importer.Dataset{Items: []importer.ItemImport{
		testutil.NewTestImportItem("clubs", "Social", "Rotaract"),
	}}
	res, err := f.svc.ImportDataset(ctx, ds, "inline", importer.FormatYAML, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Deleted)
	assert.True(t, res.Record.Replaced)
	assert.Equal(t, []string{"Rotaract"}, f.listPage(t, "clubs"))
	assert.Equal(t, []string{"Data Structures in Go"}, f.listPage(t, "store"))
}

func TestImportDataset_ValidationErrors(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	ds := &importer.Dataset{Items: []importer.ItemImport{
		{Page: "cafeteria", Category: "Snacks", Title: "Samosa"},
		{Page: "fees", Category: "Exam", Title: "", Numbers: map[string]float64{"amount": -5}},
	}}
	_, err := f.svc.ImportDataset(ctx, ds, "inline", importer.FormatYAML, false)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errs, 3)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")
	assert.Contains(t, err.Error(), "items[0].page")
	assert.Contains(t, err.Error(), "items[1].title")
	assert.Contains(t, err.Error(), "items[1].numbers.amount")

	history, err := f.svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestImportDataset_UnknownCategoryIsWarning(t *testing.T) {
	f := setupImport(t)

	ds := &importer.Dataset{Items: []importer.ItemImport{
		testutil.NewTestImportItem("library", "Ebooks", "Go in Action"),
	}}
	res, err := f.svc.ImportDataset(context.Background(), ds, "inline", importer.FormatYAML, false)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, res.Record.WarningCount)
	assert.Equal(t, []string{"Go in Action"}, f.listPage(t, "library"))
}

func TestImportDataset_DuplicateOfStoredIDRollsBack(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	_, err := f.svc.ImportFile(ctx, writeDataset(t, "a.yaml", clubsYAML), false)
	require.NoError(t, err)

	ds := &importer.Dataset{Items: []importer.ItemImport{
		testutil.NewTestImportItem("clubs", "Social", "Rotaract"),
		{ID: "c1", Page: "clubs", Category: "Technical", Title: "Robotics Again"},
	}}
	_, err = f.svc.ImportDataset(ctx, ds, "inline", importer.FormatYAML, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemExists)
	assert.Contains(t, err.Error(), `importing "Robotics Again"`)
	assert.Contains(t, err.Error(), "(clubs/c1)")
	assert.Equal(t, []string{"Robotics Club", "Chess Club"}, f.listPage(t, "clubs"))

	history, err := f.svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestImportDataset_RollbackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	uow := &testutil.FailingUoW{DB: database, FailOn: 3, Err: injected}
	svc := NewImportService(uow, repository.NewSQLiteImportRepo(database), loadCatalog(t))

	ds := &importer.Dataset{Items: []importer.ItemImport{
		testutil.NewTestImportItem("goals", "Fitness", "Run 5k"),
		testutil.NewTestImportItem("goals", "Career", "Finish internship"),
		testutil.NewTestImportItem("goals", "Personal", "Learn guitar"),
	}}
	// Writes are the three item inserts followed by the history row.
	_, err := svc.ImportDataset(context.Background(), ds, "inline", importer.FormatYAML, false)
	require.ErrorIs(t, err, injected)

	items, err := repository.NewSQLiteItemRepo(database).ListByPage(context.Background(), "goals")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImportThenShow_SQLiteProvider(t *testing.T) {
	f := setupImport(t)
	ctx := context.Background()

	_, err := f.svc.ImportFile(ctx, writeDataset(t, "a.yaml", clubsYAML), false)
	require.NoError(t, err)

	dash := NewDashboardService(f.cat, provider.NewStoreProvider(f.items))
	resp, err := dash.ShowPage(ctx, contract.PageRequest{Page: "clubs", Category: "Technical"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Robotics Club", resp.Rows[0].Title)

	joined, ok := resp.Metric("joined")
	require.True(t, ok)
	assert.Equal(t, 1.0, joined.Value)
}
