package cli

import (
	"github.com/alexanderramin/campus/internal/config"
	"github.com/alexanderramin/campus/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dashboard service.DashboardService
	Imports   service.ImportService

	// Setup wires the services from the resolved configuration once the
	// global flags are parsed. Nil when the App is already wired.
	Setup func(cfg *config.Config) error

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram
	// on the alternate screen.
	RunProgram func(m tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "campus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "campus",
		Short:         "Smart campus student dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return app.Setup(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyConfig, "", "Config file (default .campus.yaml in ./ or ~/.campus)")
	flags.String(config.KeyDB, "", "SQLite database path (default ~/.campus/campus.db)")
	flags.String(config.KeySource, "", "Item source: seed or sqlite (default seed)")
	flags.BoolP(config.KeyVerbose, "v", false, "Log use cases to stderr")

	root.AddCommand(
		newPagesCmd(app),
		newShowCmd(app),
		newBrowseCmd(app),
		newImportCmd(app),
		newImportsCmd(app),
	)

	return root
}
