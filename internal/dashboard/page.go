// Package dashboard binds a page definition to a view controller and turns
// the current selection into a renderable snapshot.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/campus/internal/contract"
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/metrics"
	"github.com/alexanderramin/campus/internal/view"
)

// Page is one opened dashboard module.
type Page struct {
	spec domain.PageSpec
	ctrl *view.Controller[domain.Item]
}

// NewPage opens spec over items. Items are ordered by Position; items of
// other pages are dropped.
func NewPage(spec domain.PageSpec, items []domain.Item) *Page {
	p := &Page{spec: spec}
	p.ctrl = view.NewController(spec.Categories, p.ownItems(items), p.computeMetrics)
	return p
}

func (p *Page) Spec() domain.PageSpec { return p.spec }

func (p *Page) Controller() *view.Controller[domain.Item] { return p.ctrl }

// Reload replaces the items of the page, keeping the selection.
func (p *Page) Reload(items []domain.Item) {
	p.ctrl.SetStore(p.ownItems(items))
}

// Apply sets the selection described by req and returns user-facing
// warnings, such as an unknown category that fell back to "All".
func (p *Page) Apply(req contract.PageRequest) []string {
	var warnings []string
	p.ctrl.SetSearchText(req.Search)
	category := domain.CoalesceStr(req.Category, domain.AllCategory)
	if !p.ctrl.SetActiveCategory(category) {
		warnings = append(warnings,
			fmt.Sprintf("unknown category %q for %s; showing %s", category, p.spec.Name, domain.AllCategory))
	}
	return warnings
}

// Snapshot renders the current view and metrics.
func (p *Page) Snapshot() *contract.PageResponse {
	viewItems := p.ctrl.View()
	values := p.ctrl.Metrics()

	resp := &contract.PageResponse{
		Page:         p.spec.Name,
		Title:        p.spec.Title,
		Categories:   p.ctrl.Categories(),
		State:        p.ctrl.State(),
		Rows:         make([]contract.ItemRow, 0, len(viewItems)),
		Metrics:      make([]contract.MetricValue, 0, len(p.spec.Metrics)),
		Total:        len(p.ctrl.Store()),
		Visible:      len(viewItems),
		Empty:        len(viewItems) == 0,
		EmptyMessage: p.spec.Empty(),
	}

	for _, it := range viewItems {
		resp.Rows = append(resp.Rows, p.row(it))
	}

	for _, def := range p.spec.Metrics {
		mv := contract.MetricValue{
			Name:  def.Name,
			Label: domain.CoalesceStr(def.Label, def.Name),
			Kind:  def.Kind,
			Scope: domain.MetricScope(domain.CoalesceStr(string(def.Scope), string(domain.ScopeView))),
			Value: values[def.Name],
		}
		if def.Banded {
			mv.Band = metrics.BandFor(mv.Value, p.spec.Thresholds)
			mv.BandLabel = p.spec.Band.Label(mv.Band)
		}
		resp.Metrics = append(resp.Metrics, mv)
	}

	return resp
}

func (p *Page) row(it domain.Item) contract.ItemRow {
	r := contract.ItemRow{
		ID:          it.ID,
		Category:    it.Category,
		Title:       it.Title,
		Description: it.Description,
		Status:      it.Status,
		Fields:      it.Fields,
		Numbers:     it.Numbers,
	}
	if p.spec.Band != nil {
		pct, band := metrics.ItemBand(it, p.spec.Band, p.spec.Thresholds)
		r.BandPct = &pct
		r.Band = band
		r.BandLabel = p.spec.Band.Label(band)
	}
	return r
}

func (p *Page) computeMetrics(viewItems, store []domain.Item) map[string]float64 {
	return metrics.Evaluate(p.spec.Metrics, viewItems, store, p.spec.Thresholds).Values
}

func (p *Page) ownItems(items []domain.Item) []domain.Item {
	own := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Page == "" || it.Page == p.spec.Name {
			own = append(own, it)
		}
	}
	sort.SliceStable(own, func(i, j int) bool { return own[i].Position < own[j].Position })
	return own
}
