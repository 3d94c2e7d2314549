package cli

import (
	"fmt"

	"github.com/alexanderramin/campus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPagesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List dashboard pages with their categories and item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := app.Dashboard.ListPages(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPages(pages))
			return nil
		},
	}
}
