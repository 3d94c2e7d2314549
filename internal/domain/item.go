package domain

import "sort"

// Item is a single record shown on a dashboard page: a notification, a
// document request, a library loan, an attendance subject and so on.
type Item struct {
	ID          string
	Page        string
	Category    string
	Title       string
	Description string
	Status      string

	// Fields holds extra text labels (author, venue, company). All values
	// take part in search.
	Fields map[string]string

	// Numbers holds named numeric fields used by metrics and bands.
	Numbers map[string]float64

	// Position is the insertion order within the page.
	Position int
}

// RecordCategory implements filter.Record.
func (i Item) RecordCategory() string { return i.Category }

// SearchFields implements filter.Record. Field values are returned in key
// order so the result is stable.
func (i Item) SearchFields() []string {
	out := make([]string, 0, 2+len(i.Fields))
	out = append(out, i.Title, i.Description)
	keys := make([]string, 0, len(i.Fields))
	for k := range i.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, i.Fields[k])
	}
	return out
}

// Number returns the named numeric field, or 0 when absent.
func (i Item) Number(name string) float64 {
	return i.Numbers[name]
}

// Field returns the named text field, or "" when absent.
func (i Item) Field(name string) string {
	return i.Fields[name]
}
