package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/ember/internal/cli"
	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ember/ember.db
	dbPath := os.Getenv("EMBER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ember", "ember.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	checkInRepo := repository.NewSQLiteCheckInRepo(database)
	contactRepo := repository.NewSQLiteContactRepo(database)
	identityRepo := repository.NewSQLiteIdentityRepo(database)

	deviceUserID, err := identityRepo.DeviceUserID(context.Background())
	if err != nil {
		return fmt.Errorf("resolving device identity: %w", err)
	}

	app := &cli.App{
		DeviceUserID: deviceUserID,
		CheckIns:     service.NewCheckInService(checkInRepo),
		Summary:      service.NewSummaryService(checkInRepo),
		Contacts:     service.NewContactService(contactRepo),
	}

	// Detect interactive terminal for form-based entry.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
