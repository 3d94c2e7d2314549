package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/campus/internal/catalog"
	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/provider"
	"github.com/alexanderramin/campus/internal/repository"
	"github.com/alexanderramin/campus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{ err error }

func (p failingProvider) FetchItems(context.Context, string) ([]domain.Item, error) {
	return nil, p.err
}

func TestDashboardService_ListPages(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider())

	pages, err := svc.ListPages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 13)
	assert.Equal(t, "academic", pages[0].Name)
	assert.Equal(t, "Academic", pages[0].Title)
	assert.Equal(t, domain.AllCategory, pages[0].Categories[0])
	for _, p := range pages {
		assert.Positive(t, p.ItemCount, p.Name)
	}
}

func TestDashboardService_ListPages_ProviderError(t *testing.T) {
	boom := errors.New("disk gone")
	svc := NewDashboardService(loadCatalog(t), failingProvider{err: boom})

	_, err := svc.ListPages(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestDashboardService_ListPages_CountsFromStore(t *testing.T) {
	repo := repository.NewSQLiteItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem("clubs", "Technical", "Robotics")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem("clubs", "Sports", "Chess")))

	svc := NewDashboardService(loadCatalog(t), provider.NewStoreProvider(repo))
	pages, err := svc.ListPages(ctx)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, p := range pages {
		counts[p.Name] = p.ItemCount
	}
	assert.Equal(t, 2, counts["clubs"])
	assert.Equal(t, 0, counts["fees"], "pages without stored items count zero")
}

func TestDashboardService_OpenPage(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider())

	page, err := svc.OpenPage(context.Background(), "attendance")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultViewState(), page.Controller().State())
	assert.Len(t, page.Controller().View(), 5)
}

func TestDashboardService_OpenPage_Unknown(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider())

	_, err := svc.OpenPage(context.Background(), "cafeteria")
	assert.ErrorIs(t, err, catalog.ErrUnknownPage)
}

func TestDashboardService_ShowPage(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider())

	resp, err := svc.ShowPage(context.Background(), contract.PageRequest{
		Page:     "documents",
		Category: domain.AllCategory,
		Search:   "  EMERGENCY ",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Family Emergency", resp.Rows[0].Title)
	assert.Empty(t, resp.Warnings)
}

func TestDashboardService_ShowPage_UnknownCategoryWarns(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider())

	resp, err := svc.ShowPage(context.Background(), contract.PageRequest{Page: "library", Category: "Ebooks"})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], `"Ebooks"`)
	assert.Equal(t, resp.Total, resp.Visible)
}

func TestDashboardService_ShowPage_Empty(t *testing.T) {
	svc := NewDashboardService(loadCatalog(t), provider.StaticProvider{})

	resp, err := svc.ShowPage(context.Background(), contract.NewPageRequest("wellness"))
	require.NoError(t, err)
	assert.True(t, resp.Empty)
	assert.Equal(t, "No wellness sessions match the current filters.", resp.EmptyMessage)
}

func TestDashboardService_ThresholdOverride(t *testing.T) {
	cat := loadCatalog(t)
	require.NoError(t, cat.SetThresholds("attendance", domain.Thresholds{Safe: 65, Warning: 60}))
	svc := NewDashboardService(cat, provider.NewSeedProvider())

	resp, err := svc.ShowPage(context.Background(), contract.NewPageRequest("attendance"))
	require.NoError(t, err)
	// 20 of 29 is Critical under 85/75 but Safe under 65/60.
	assert.Equal(t, domain.BandSafe, resp.Rows[0].Band)
}

func TestDashboardService_ObservesUseCases(t *testing.T) {
	var logs bytes.Buffer
	svc := NewDashboardService(loadCatalog(t), provider.NewSeedProvider(), NewLogUseCaseObserver(&logs))

	_, err := svc.ShowPage(context.Background(), contract.PageRequest{Page: "fees", Category: "Exam"})
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, "use_case=show-page")
	assert.Contains(t, out, "use_case=open-page")
	assert.Contains(t, out, "visible=1")

	logs.Reset()
	_, err = svc.ShowPage(context.Background(), contract.NewPageRequest("cafeteria"))
	require.Error(t, err)
	assert.Contains(t, logs.String(), "success=false")
	assert.Contains(t, logs.String(), "level=ERROR")
}
