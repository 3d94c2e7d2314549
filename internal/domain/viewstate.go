package domain

// ViewState is the transient selection of a page: which category tab is
// active and what the user typed into the search box.
type ViewState struct {
	ActiveCategory string
	SearchText     string
}

// DefaultViewState shows everything.
func DefaultViewState() ViewState {
	return ViewState{ActiveCategory: AllCategory}
}
