package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/campus/internal/cli/formatter"
	"github.com/alexanderramin/campus/internal/contract"
	"github.com/spf13/cobra"
)

var errPageRequired = errors.New("page name is required (run `campus pages` to list them)")

func newShowCmd(app *App) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "show [page]",
		Short: "Print one dashboard page",
		Long: `Print one dashboard page with its category tabs, summary numbers and
the items matching --category and --search. Without a page argument on an
interactive terminal a picker is shown.`,
		Example: `  campus show attendance --category Lab
  campus show documents --search emergency`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, err := resolvePage(ctx, app, args)
			if err != nil {
				return err
			}

			req := contract.NewPageRequest(name)
			if category != "" {
				req.Category = category
			}
			req.Search = search

			resp, err := app.Dashboard.ShowPage(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPage(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category tab to show (default All)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text to search for")

	return cmd
}

// resolvePage returns the page named in args, or asks for one when running
// on a terminal.
func resolvePage(ctx context.Context, app *App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !app.interactive() {
		return "", errPageRequired
	}

	var name string
	form, err := pagePickerForm(ctx, app, &name)
	if err != nil {
		return "", err
	}
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("picking page: %w", err)
	}
	if name == "" {
		return "", errPageRequired
	}
	return name, nil
}
