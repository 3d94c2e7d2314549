package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/dashboard"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/provider"
)

type dashboardService struct {
	pages    PageCatalog
	provider provider.Provider
	observer UseCaseObserver
}

func NewDashboardService(pages PageCatalog, p provider.Provider, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		pages:    pages,
		provider: p,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) ListPages(ctx context.Context) ([]contract.PageSummary, error) {
	specs := s.pages.Pages()
	counts, err := s.itemCounts(ctx, specs)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	out := make([]contract.PageSummary, 0, len(specs))
	for _, spec := range specs {
		out = append(out, contract.PageSummary{
			Name:       spec.Name,
			Title:      spec.Title,
			Categories: append([]string(nil), spec.Categories...),
			ItemCount:  counts[spec.Name],
		})
	}
	return out, nil
}

func (s *dashboardService) itemCounts(ctx context.Context, specs []domain.PageSpec) (map[string]int, error) {
	if c, ok := s.provider.(provider.Counter); ok {
		return c.CountItems(ctx)
	}
	counts := make(map[string]int, len(specs))
	for _, spec := range specs {
		items, err := s.provider.FetchItems(ctx, spec.Name)
		if err != nil {
			return nil, err
		}
		counts[spec.Name] = len(items)
	}
	return counts, nil
}

func (s *dashboardService) OpenPage(ctx context.Context, name string) (page *dashboard.Page, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"page": name}
	defer func() { observe(ctx, s.observer, "open-page", startedAt, err, fields) }()

	spec, err := s.pages.Page(name)
	if err != nil {
		return nil, err
	}
	items, err := s.provider.FetchItems(ctx, spec.Name)
	if err != nil {
		return nil, err
	}
	fields["items"] = len(items)
	return dashboard.NewPage(spec, items), nil
}

func (s *dashboardService) ShowPage(ctx context.Context, req contract.PageRequest) (resp *contract.PageResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"page":     req.Page,
		"category": req.Category,
		"search":   req.Search,
	}
	defer func() { observe(ctx, s.observer, "show-page", startedAt, err, fields) }()

	page, err := s.OpenPage(ctx, req.Page)
	if err != nil {
		return nil, err
	}
	warnings := page.Apply(req)
	resp = page.Snapshot()
	resp.Warnings = append(resp.Warnings, warnings...)
	fields["visible"] = resp.Visible
	fields["total"] = resp.Total
	return resp, nil
}
