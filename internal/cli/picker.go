package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/campus/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// campusHuhTheme returns a huh theme matching the formatter palette.
func campusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pagePickerForm builds a select over every page, labelled with its title
// and item count. The chosen page name is written to result.
func pagePickerForm(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	pages, err := app.Dashboard.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to pick from")
	}

	options := make([]huh.Option[string], 0, len(pages))
	for _, p := range pages {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", p.Title, p.ItemCount), p.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which page?").
				Options(options...).
				Value(result),
		),
	).WithTheme(campusHuhTheme()).WithShowHelp(false), nil
}
