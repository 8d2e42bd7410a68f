package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhale/tripgrid/internal/cli"
	"github.com/jhale/tripgrid/internal/config"
	"github.com/jhale/tripgrid/internal/db"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tripgrid/tripgrid.db
	dbPath := os.Getenv("TRIPGRID_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tripgrid", "tripgrid.db")
	}

	// Config file: env var or default ~/.tripgrid/config.yaml. Missing file
	// falls back to defaults inside Load.
	cfgPath := os.Getenv("TRIPGRID_CONFIG")
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".tripgrid", "config.yaml")
	}
	cfg, loc, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Trips:   repository.NewSQLiteTripRepo(database),
		Items:   repository.NewSQLiteItemRepo(database),
		Config:  cfg,
		Loc:     loc,
		Quality: domain.NewLogQualityObserver(os.Stderr),
	}

	return cli.NewRootCmd(app).Execute()
}
