package contract

import "github.com/alexanderramin/campus/internal/domain"

// PageRequest selects a page and the ViewState to apply before taking a
// snapshot.
type PageRequest struct {
	Page     string
	Category string
	Search   string
}

func NewPageRequest(page string) PageRequest {
	return PageRequest{
		Page:     page,
		Category: domain.AllCategory,
	}
}

// ItemRow is one visible item. Band fields are set only on pages that
// declare a per-item band.
type ItemRow struct {
	ID          string
	Category    string
	Title       string
	Description string
	Status      string
	Fields      map[string]string
	Numbers     map[string]float64

	BandPct   *float64
	Band      domain.Band
	BandLabel string
}

// MetricValue is one evaluated summary number, in declaration order.
type MetricValue struct {
	Name      string
	Label     string
	Kind      domain.MetricKind
	Scope     domain.MetricScope
	Value     float64
	Band      domain.Band
	BandLabel string
}

type PageResponse struct {
	Page         string
	Title        string
	Categories   []string
	State        domain.ViewState
	Rows         []ItemRow
	Metrics      []MetricValue
	Total        int
	Visible      int
	Empty        bool
	EmptyMessage string
	Warnings     []string
}

// Metric returns the named metric value and whether it exists.
func (r *PageResponse) Metric(name string) (MetricValue, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return MetricValue{}, false
}

// PageSummary describes a page in the page listing.
type PageSummary struct {
	Name       string
	Title      string
	Categories []string
	ItemCount  int
}
