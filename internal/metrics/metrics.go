// Package metrics computes the summary numbers shown in stat cards and
// progress bars. Every function is pure.
package metrics

import (
	"math"

	"github.com/alexanderramin/campus/internal/domain"
)

// CountBy returns how many items satisfy pred.
func CountBy[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Percentage returns numerator/denominator*100 clamped to [0, 100].
// A zero or negative denominator yields 0.
func Percentage(numerator, denominator float64) float64 {
	if denominator <= 0 || math.IsNaN(numerator) || math.IsNaN(denominator) {
		return 0
	}
	pct := numerator / denominator * 100
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// BandFor classifies pct against thresholds, highest band first.
func BandFor(pct float64, th domain.Thresholds) domain.Band {
	switch {
	case pct >= th.Safe:
		return domain.BandSafe
	case pct >= th.Warning:
		return domain.BandWarning
	default:
		return domain.BandCritical
	}
}

// Sum adds up the named numeric field across items.
func Sum(items []domain.Item, field string) float64 {
	var total float64
	for _, it := range items {
		total += it.Number(field)
	}
	return total
}

// Ratio returns the percentage of two summed numeric fields.
func Ratio(items []domain.Item, numerator, denominator string) float64 {
	return Percentage(Sum(items, numerator), Sum(items, denominator))
}

// ItemBand classifies a single item with the page band definition.
func ItemBand(it domain.Item, spec *domain.BandSpec, th domain.Thresholds) (float64, domain.Band) {
	pct := Percentage(it.Number(spec.Numerator), it.Number(spec.Denominator))
	return pct, BandFor(pct, th)
}

// StatusIn returns a predicate matching items whose status is one of
// statuses. No statuses matches every item.
func StatusIn(statuses ...string) func(domain.Item) bool {
	if len(statuses) == 0 {
		return func(domain.Item) bool { return true }
	}
	set := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		set[s] = true
	}
	return func(it domain.Item) bool { return set[it.Status] }
}
