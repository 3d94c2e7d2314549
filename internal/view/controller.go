// Package view owns the page-local selection state and keeps the filtered
// view and its metrics in sync with it.
package view

import (
	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/filter"
)

// MetricsFunc computes the metrics of a page from its current view and its
// full store.
type MetricsFunc[T filter.Record] func(view, store []T) map[string]float64

// Controller holds the ViewState of one page. Every transition recomputes
// the view and the metrics before returning, so readers always see a
// consistent pair. A Controller has a single owner and is not safe for
// concurrent use.
type Controller[T filter.Record] struct {
	categories []string
	store      []T
	compute    MetricsFunc[T]

	state   domain.ViewState
	view    []T
	metrics map[string]float64
}

// NewController creates a controller over store. The "All" category is
// always available and selected initially. compute may be nil.
func NewController[T filter.Record](categories []string, store []T, compute MetricsFunc[T]) *Controller[T] {
	c := &Controller[T]{
		categories: NormalizeCategories(categories),
		store:      store,
		compute:    compute,
		state:      domain.DefaultViewState(),
	}
	c.recompute()
	return c
}

// Dispatch applies a and recomputes. It returns false when a named an
// unknown category.
func (c *Controller[T]) Dispatch(a Action) bool {
	next, ok := Reduce(c.state, c.categories, a)
	c.state = next
	c.recompute()
	return ok
}

// SetActiveCategory selects a category tab. Unknown categories fall back to
// "All" and report false.
func (c *Controller[T]) SetActiveCategory(category string) bool {
	return c.Dispatch(SelectCategory(category))
}

// SetSearchText replaces the search text.
func (c *Controller[T]) SetSearchText(text string) {
	c.Dispatch(SetSearch(text))
}

// Reset returns to the "All" tab with no search text.
func (c *Controller[T]) Reset() {
	c.Dispatch(Reset())
}

// SetStore replaces the underlying items, keeping the current selection.
func (c *Controller[T]) SetStore(items []T) {
	c.store = items
	c.recompute()
}

// CycleCategory moves the active tab by delta positions, wrapping around.
func (c *Controller[T]) CycleCategory(delta int) {
	n := len(c.categories)
	idx := 0
	for i, cat := range c.categories {
		if cat == c.state.ActiveCategory {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	c.SetActiveCategory(c.categories[idx])
}

func (c *Controller[T]) State() domain.ViewState { return c.state }

// Categories returns a copy of the declared category tabs, "All" first.
func (c *Controller[T]) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Store returns the unfiltered items.
func (c *Controller[T]) Store() []T { return c.store }

// View returns the items matching the current state, in store order.
func (c *Controller[T]) View() []T { return c.view }

// Metrics returns a copy of the metrics computed for the current state.
func (c *Controller[T]) Metrics() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for k, v := range c.metrics {
		out[k] = v
	}
	return out
}

func (c *Controller[T]) recompute() {
	c.view = filter.Apply(c.store, c.state)
	if c.compute == nil {
		c.metrics = map[string]float64{}
		return
	}
	c.metrics = c.compute(c.view, c.store)
	if c.metrics == nil {
		c.metrics = map[string]float64{}
	}
}
