package cli

import (
	"fmt"

	"github.com/alexanderramin/campus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a YAML or JSONC dataset into the SQLite store",
		Long: `Load a dataset into the SQLite store. Files ending in .yaml or .yml are
read as YAML, .json and .jsonc as JSON with comments. Items are appended
after the stored items of their page unless --replace is given, which first
removes the stored items of every page named in the file.

The whole file is rejected when any item is invalid. Items whose category
is not one of the page's tabs are kept with a warning; they only show up
under All.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Imports.ImportFile(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(res.Record, res.PerPage, res.Deleted, res.Warnings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored items of the pages in the file")

	return cmd
}

func newImportsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Show recent dataset imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Imports.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportHistory(recs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of imports to show (0 for all)")

	return cmd
}
