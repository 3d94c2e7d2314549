package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [page]",
		Short: "Browse dashboard pages interactively",
		Long: `Open the interactive page browser, starting at the given page or the
first one. tab/shift+tab switch category tabs, / searches, esc clears the
selection, [ and ] move between pages, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pages, err := app.Dashboard.ListPages(ctx)
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				return fmt.Errorf("no pages to browse")
			}

			name := pages[0].Name
			if len(args) > 0 {
				name = args[0]
			}
			page, err := app.Dashboard.OpenPage(ctx, name)
			if err != nil {
				return err
			}

			index := 0
			for i, p := range pages {
				if p.Name == page.Spec().Name {
					index = i
					break
				}
			}
			return app.runProgram(newPageView(app, pages, index, page))
		},
	}
}
