package domain

import (
	"fmt"
	"regexp"
)

var pageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{1,31}$`)

// DefaultEmptyMessage is shown when a page does not declare its own.
const DefaultEmptyMessage = "No items match the current filters."

// Thresholds are the ordered cut points used to band a percentage.
type Thresholds struct {
	Safe    float64
	Warning float64
}

// DefaultThresholds matches the attendance policy of the campus: 85% safe,
// 75% warning.
func DefaultThresholds() Thresholds {
	return Thresholds{Safe: 85, Warning: 75}
}

// Validate checks that both cut points are percentages and that the warning
// cut point does not exceed the safe one.
func (t Thresholds) Validate() error {
	if t.Safe < 0 || t.Safe > 100 {
		return fmt.Errorf("safe threshold %.2f must be within 0-100", t.Safe)
	}
	if t.Warning < 0 || t.Warning > 100 {
		return fmt.Errorf("warning threshold %.2f must be within 0-100", t.Warning)
	}
	if t.Warning > t.Safe {
		return fmt.Errorf("warning threshold %.2f must not exceed safe threshold %.2f", t.Warning, t.Safe)
	}
	return nil
}

// MetricDef declares one summary number of a page.
type MetricDef struct {
	Name  string
	Label string
	Kind  MetricKind
	Scope MetricScope

	// Statuses restricts count metrics and count-based percentages.
	// Empty means every item.
	Statuses []string

	// Field is summed by sum metrics.
	Field string

	// Numerator and Denominator name numeric fields for field-based
	// percentages. When both are empty the percentage is count-based.
	Numerator   string
	Denominator string

	// Banded percentages are also classified with the page thresholds.
	Banded bool
}

// BandSpec classifies each item by the percentage of two of its numeric
// fields.
type BandSpec struct {
	Numerator   string
	Denominator string
	Labels      map[Band]string
}

// Label returns the page-specific label for a band, falling back to the
// band name itself.
func (b *BandSpec) Label(band Band) string {
	if b != nil {
		if l, ok := b.Labels[band]; ok && l != "" {
			return l
		}
	}
	return string(band)
}

// PageSpec describes one dashboard module.
type PageSpec struct {
	Name         string
	Title        string
	Categories   []string
	EmptyMessage string
	Metrics      []MetricDef
	Band         *BandSpec
	Thresholds   Thresholds
}

// HasCategory reports whether c is one of the declared category tabs.
func (p *PageSpec) HasCategory(c string) bool {
	for _, declared := range p.Categories {
		if declared == c {
			return true
		}
	}
	return false
}

// Empty returns the empty-state message of the page.
func (p *PageSpec) Empty() string {
	return CoalesceStr(p.EmptyMessage, DefaultEmptyMessage)
}

// Validate checks the page definition for structural errors.
func (p *PageSpec) Validate() error {
	if !pageNamePattern.MatchString(p.Name) {
		return fmt.Errorf("page name %q must be lowercase letters, digits or dashes", p.Name)
	}
	if len(p.Categories) == 0 || p.Categories[0] != AllCategory {
		return fmt.Errorf("page %s: first category must be %q", p.Name, AllCategory)
	}
	seen := make(map[string]bool, len(p.Categories))
	for _, c := range p.Categories {
		if seen[c] {
			return fmt.Errorf("page %s: duplicate category %q", p.Name, c)
		}
		seen[c] = true
	}
	if err := p.Thresholds.Validate(); err != nil {
		return fmt.Errorf("page %s: %w", p.Name, err)
	}
	names := make(map[string]bool, len(p.Metrics))
	for _, m := range p.Metrics {
		if m.Name == "" {
			return fmt.Errorf("page %s: metric name is required", p.Name)
		}
		if names[m.Name] {
			return fmt.Errorf("page %s: duplicate metric %q", p.Name, m.Name)
		}
		names[m.Name] = true
		if !ValidMetricKinds[m.Kind] {
			return fmt.Errorf("page %s: metric %s: invalid kind %q", p.Name, m.Name, m.Kind)
		}
		if m.Scope != "" && m.Scope != ScopeView && m.Scope != ScopeStore {
			return fmt.Errorf("page %s: metric %s: invalid scope %q", p.Name, m.Name, m.Scope)
		}
		if m.Kind == MetricSum && m.Field == "" {
			return fmt.Errorf("page %s: metric %s: sum requires a field", p.Name, m.Name)
		}
		if (m.Numerator == "") != (m.Denominator == "") {
			return fmt.Errorf("page %s: metric %s: numerator and denominator go together", p.Name, m.Name)
		}
		if m.Banded && m.Kind != MetricPercentage {
			return fmt.Errorf("page %s: metric %s: only percentages can be banded", p.Name, m.Name)
		}
	}
	if p.Band != nil && (p.Band.Numerator == "" || p.Band.Denominator == "") {
		return fmt.Errorf("page %s: band requires numerator and denominator", p.Name)
	}
	return nil
}
