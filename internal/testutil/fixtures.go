package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/importer"
)

var testItemCounter atomic.Int64

// Item options
type ItemOption func(*domain.Item)

func WithID(id string) ItemOption {
	return func(it *domain.Item) {
		it.ID = id
	}
}

func WithStatus(s string) ItemOption {
	return func(it *domain.Item) {
		it.Status = s
	}
}

func WithDescription(d string) ItemOption {
	return func(it *domain.Item) {
		it.Description = d
	}
}

func WithField(name, value string) ItemOption {
	return func(it *domain.Item) {
		if it.Fields == nil {
			it.Fields = map[string]string{}
		}
		it.Fields[name] = value
	}
}

func WithNumber(name string, v float64) ItemOption {
	return func(it *domain.Item) {
		if it.Numbers == nil {
			it.Numbers = map[string]float64{}
		}
		it.Numbers[name] = v
	}
}

func WithPosition(p int) ItemOption {
	return func(it *domain.Item) {
		it.Position = p
	}
}

// NewTestItem builds an item with a unique id. Position follows creation
// order unless overridden.
func NewTestItem(page, category, title string, opts ...ItemOption) *domain.Item {
	n := testItemCounter.Add(1)
	it := &domain.Item{
		ID:       fmt.Sprintf("%s-%03d", page, n),
		Page:     page,
		Category: category,
		Title:    title,
		Position: int(n),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestImportItem builds one dataset entry for importer and service tests.
func NewTestImportItem(page, category, title string) importer.ItemImport {
	return importer.ItemImport{Page: page, Category: category, Title: title}
}
