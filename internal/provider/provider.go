// Package provider supplies the item store of each dashboard page.
package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/campus/internal/catalog"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/repository"
)

// Provider returns the items of one page in display order.
type Provider interface {
	FetchItems(ctx context.Context, page string) ([]domain.Item, error)
}

// Counter is implemented by providers that can count the items of every
// page without loading them.
type Counter interface {
	CountItems(ctx context.Context) (map[string]int, error)
}

// SeedProvider serves the mock dataset embedded in the binary.
type SeedProvider struct {
	once   sync.Once
	byPage map[string][]domain.Item
	err    error
}

func NewSeedProvider() *SeedProvider {
	return &SeedProvider{}
}

func (p *SeedProvider) FetchItems(ctx context.Context, page string) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.once.Do(p.load)
	if p.err != nil {
		return nil, p.err
	}
	return append([]domain.Item(nil), p.byPage[page]...), nil
}

func (p *SeedProvider) CountItems(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.once.Do(p.load)
	if p.err != nil {
		return nil, p.err
	}
	counts := make(map[string]int, len(p.byPage))
	for page, items := range p.byPage {
		counts[page] = len(items)
	}
	return counts, nil
}

func (p *SeedProvider) load() {
	items, err := catalog.SeedItems()
	if err != nil {
		p.err = fmt.Errorf("loading seed items: %w", err)
		return
	}
	p.byPage = make(map[string][]domain.Item)
	for _, it := range items {
		p.byPage[it.Page] = append(p.byPage[it.Page], it)
	}
}

// StoreProvider reads items imported into SQLite.
type StoreProvider struct {
	items repository.ItemRepo
}

func NewStoreProvider(items repository.ItemRepo) *StoreProvider {
	return &StoreProvider{items: items}
}

func (p *StoreProvider) FetchItems(ctx context.Context, page string) ([]domain.Item, error) {
	items, err := p.items.ListByPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("fetching %s items: %w", page, err)
	}
	return items, nil
}

func (p *StoreProvider) CountItems(ctx context.Context) (map[string]int, error) {
	rows, err := p.items.CountByPage(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, pc := range rows {
		counts[pc.Page] = pc.Count
	}
	return counts, nil
}

// StaticProvider serves a fixed slice of items. Items whose Page is empty
// belong to every page.
type StaticProvider []domain.Item

func (s StaticProvider) FetchItems(_ context.Context, page string) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range s {
		if it.Page == "" || it.Page == page {
			out = append(out, it)
		}
	}
	return out, nil
}

// New returns the provider for a configured source.
func New(kind domain.SourceKind, items repository.ItemRepo) (Provider, error) {
	switch kind {
	case domain.SourceSeed, "":
		return NewSeedProvider(), nil
	case domain.SourceSQLite:
		if items == nil {
			return nil, fmt.Errorf("source %s needs a database", kind)
		}
		return NewStoreProvider(items), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want %s or %s)", kind, domain.SourceSeed, domain.SourceSQLite)
	}
}
