// Package filter decides which records of a page belong in the current view.
//
// A record matches a ViewState when its category equals the active category
// (or the active category is "All") and the search text is a case-insensitive
// substring of at least one of its searchable fields.
package filter

import (
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
	"golang.org/x/text/cases"
)

// Record is anything that can be placed in a view.
type Record interface {
	RecordCategory() string
	SearchFields() []string
}

// Matches reports whether r belongs in the view described by vs.
func Matches[T Record](r T, vs domain.ViewState) bool {
	return categoryMatches(r, vs.ActiveCategory) && textMatches(r, normalize(vs.SearchText))
}

// Apply returns the records matching vs in their original order. The input
// slice is never modified; the result is always a fresh slice.
func Apply[T Record](items []T, vs domain.ViewState) []T {
	query := normalize(vs.SearchText)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if categoryMatches(it, vs.ActiveCategory) && textMatches(it, query) {
			out = append(out, it)
		}
	}
	return out
}

// An empty category behaves like the "All" tab so the zero ViewState shows
// everything.
func isAll(category string) bool {
	return category == "" || category == domain.AllCategory
}

func categoryMatches[T Record](r T, category string) bool {
	if isAll(category) {
		return true
	}
	return r.RecordCategory() == category
}

// textMatches expects an already normalized query.
func textMatches[T Record](r T, query string) bool {
	if query == "" {
		return true
	}
	for _, f := range r.SearchFields() {
		if strings.Contains(normalize(f), query) {
			return true
		}
	}
	return false
}

// normalize trims surrounding whitespace and applies Unicode case folding.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
