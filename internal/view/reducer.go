package view

import (
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
)

type ActionKind string

const (
	ActionSelectCategory ActionKind = "select_category"
	ActionSetSearch      ActionKind = "set_search"
	ActionReset          ActionKind = "reset"
)

// Action is a single ViewState transition request.
type Action struct {
	Kind  ActionKind
	Value string
}

func SelectCategory(c string) Action { return Action{Kind: ActionSelectCategory, Value: c} }
func SetSearch(text string) Action   { return Action{Kind: ActionSetSearch, Value: text} }
func Reset() Action                  { return Action{Kind: ActionReset} }

// Reduce applies a to state. The boolean is false when the action named a
// category outside categories; the state then falls back to "All".
func Reduce(state domain.ViewState, categories []string, a Action) (domain.ViewState, bool) {
	switch a.Kind {
	case ActionSelectCategory:
		if !contains(categories, a.Value) {
			state.ActiveCategory = domain.AllCategory
			return state, false
		}
		state.ActiveCategory = a.Value
	case ActionSetSearch:
		state.SearchText = a.Value
	case ActionReset:
		return domain.DefaultViewState(), true
	}
	return state, true
}

// NormalizeCategories returns categories with "All" as the first entry and
// duplicates removed. Blank names are dropped.
func NormalizeCategories(categories []string) []string {
	out := []string{domain.AllCategory}
	seen := map[string]bool{domain.AllCategory: true}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
