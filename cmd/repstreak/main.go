package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/repstreak/internal/cli"
	"github.com/alexanderramin/repstreak/internal/config"
	"github.com/alexanderramin/repstreak/internal/db"
	"github.com/alexanderramin/repstreak/internal/repository"
	"github.com/alexanderramin/repstreak/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var journal *sql.DB
	defer func() {
		if journal != nil {
			journal.Close()
		}
	}()

	app := &cli.App{
		Clock: time.Now,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// The journal lives in memory and is discarded at exit.
	app.OpenTracker = func(cfg config.Config) (service.TrackerService, error) {
		database, err := db.OpenJournal()
		if err != nil {
			return nil, fmt.Errorf("opening session journal: %w", err)
		}
		journal = database

		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if cfg.LogEvents {
			observer = service.NewLogUseCaseObserver(os.Stderr)
		}

		return service.NewTrackerService(
			repository.NewSQLiteSessionRepo(database),
			db.NewSQLiteUnitOfWork(database),
			observer,
		), nil
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}
