// Package catalog holds the definitions of the dashboard pages and the mock
// dataset the dashboard ships with.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/alexanderramin/campus/internal/importer"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPage is returned when a page name is not in the catalog.
var ErrUnknownPage = errors.New("unknown page")

//go:embed pages.yaml
var pagesYAML []byte

//go:embed seed.yaml
var seedYAML []byte

type pagesFile struct {
	Pages []pageDef `yaml:"pages"`
}

type pageDef struct {
	Name         string         `yaml:"name"`
	Title        string         `yaml:"title"`
	Categories   []string       `yaml:"categories"`
	EmptyMessage string         `yaml:"empty_message"`
	Thresholds   *thresholdsDef `yaml:"thresholds"`
	Band         *bandDef       `yaml:"band"`
	Metrics      []metricDef    `yaml:"metrics"`
}

type thresholdsDef struct {
	Safe    float64 `yaml:"safe"`
	Warning float64 `yaml:"warning"`
}

type bandDef struct {
	Numerator   string            `yaml:"numerator"`
	Denominator string            `yaml:"denominator"`
	Labels      map[string]string `yaml:"labels"`
}

type metricDef struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Kind        string   `yaml:"kind"`
	Scope       string   `yaml:"scope"`
	Statuses    []string `yaml:"statuses"`
	Field       string   `yaml:"field"`
	Numerator   string   `yaml:"numerator"`
	Denominator string   `yaml:"denominator"`
	Banded      bool     `yaml:"banded"`
}

// Catalog is the ordered set of page definitions.
type Catalog struct {
	pages []domain.PageSpec
	index map[string]int
}

// Load parses the built-in page definitions.
func Load() (*Catalog, error) {
	return Parse(pagesYAML)
}

// Parse builds a catalog from YAML page definitions and validates every page.
func Parse(data []byte) (*Catalog, error) {
	var f pagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing page definitions: %w", err)
	}
	c := &Catalog{index: make(map[string]int, len(f.Pages))}
	for _, def := range f.Pages {
		spec := def.toSpec()
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate page %q", spec.Name)
		}
		c.index[spec.Name] = len(c.pages)
		c.pages = append(c.pages, spec)
	}
	return c, nil
}

// Pages returns the page definitions in display order.
func (c *Catalog) Pages() []domain.PageSpec {
	return append([]domain.PageSpec(nil), c.pages...)
}

// Page returns the named page definition.
func (c *Catalog) Page(name string) (domain.PageSpec, error) {
	i, ok := c.index[name]
	if !ok {
		return domain.PageSpec{}, fmt.Errorf("%w %q", ErrUnknownPage, name)
	}
	return c.pages[i], nil
}

// Names returns the page names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.pages))
	for i, p := range c.pages {
		names[i] = p.Name
	}
	return names
}

// SetThresholds overrides the thresholds of one page.
func (c *Catalog) SetThresholds(page string, th domain.Thresholds) error {
	i, ok := c.index[page]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPage, page)
	}
	if err := th.Validate(); err != nil {
		return fmt.Errorf("page %s: %w", page, err)
	}
	c.pages[i].Thresholds = th
	return nil
}

// SeedItems returns the mock dataset shipped with the dashboard.
func SeedItems() ([]domain.Item, error) {
	ds, err := importer.Parse(seedYAML, importer.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("seed dataset: %w", err)
	}
	return importer.Convert(ds), nil
}

func (d pageDef) toSpec() domain.PageSpec {
	spec := domain.PageSpec{
		Name:         d.Name,
		Title:        domain.CoalesceStr(d.Title, d.Name),
		Categories:   append([]string{domain.AllCategory}, d.Categories...),
		EmptyMessage: d.EmptyMessage,
		Thresholds:   domain.DefaultThresholds(),
	}
	if d.Thresholds != nil {
		spec.Thresholds = domain.Thresholds{Safe: d.Thresholds.Safe, Warning: d.Thresholds.Warning}
	}
	if d.Band != nil {
		labels := make(map[domain.Band]string, len(d.Band.Labels))
		for k, v := range d.Band.Labels {
			labels[domain.Band(k)] = v
		}
		spec.Band = &domain.BandSpec{
			Numerator:   d.Band.Numerator,
			Denominator: d.Band.Denominator,
			Labels:      labels,
		}
	}
	for _, m := range d.Metrics {
		spec.Metrics = append(spec.Metrics, domain.MetricDef{
			Name:        m.Name,
			Label:       m.Label,
			Kind:        domain.MetricKind(m.Kind),
			Scope:       domain.MetricScope(m.Scope),
			Statuses:    m.Statuses,
			Field:       m.Field,
			Numerator:   m.Numerator,
			Denominator: m.Denominator,
			Banded:      m.Banded,
		})
	}
	return spec
}
