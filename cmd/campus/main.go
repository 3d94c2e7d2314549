package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/campus/internal/catalog"
	"github.com/alexanderramin/campus/internal/cli"
	"github.com/alexanderramin/campus/internal/config"
	"github.com/alexanderramin/campus/internal/db"
	"github.com/alexanderramin/campus/internal/provider"
	"github.com/alexanderramin/campus/internal/repository"
	"github.com/alexanderramin/campus/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the page picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Setup = func(cfg *config.Config) error {
		pages, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("loading page catalog: %w", err)
		}
		if err := cfg.ApplyThresholds(pages); err != nil {
			return err
		}

		var observers []service.UseCaseObserver
		if cfg.Verbose {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			if cfg.File != "" {
				logger.Debug("config loaded", "file", cfg.File)
			}
			observers = append(observers, service.NewSlogUseCaseObserver(logger))
		}

		// Open database
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		// Wire repositories
		itemRepo := repository.NewSQLiteItemRepo(database)
		importRepo := repository.NewSQLiteImportRepo(database)

		source, err := provider.New(cfg.Source, itemRepo)
		if err != nil {
			return err
		}

		// Wire services
		app.Dashboard = service.NewDashboardService(pages, source, observers...)
		app.Imports = service.NewImportService(db.NewSQLiteUnitOfWork(database), importRepo, pages, observers...)
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
