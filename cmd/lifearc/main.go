package main

import (
	"fmt"
	"os"
	"time"

	"lifearc/internal/cli"
	"lifearc/internal/cli/formatter"
	"lifearc/internal/config"
	"lifearc/internal/db"
	"lifearc/internal/planner"
	"lifearc/internal/repository"
	"lifearc/internal/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalog, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return fmt.Errorf("loading event catalog: %w", err)
	}

	var observer planner.MutationObserver = planner.NoopObserver{}
	if os.Getenv("LIFEARC_LOG") != "" {
		observer = planner.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Repo:        repository.NewSQLitePlanRepo(database),
		Catalog:     catalog,
		Today:       time.Now(),
		HistoryCap:  cfg.HistoryCap,
		DefaultZoom: cfg.DefaultZoom,
		Colored:     formatter.ColorEnabled(cfg.NoColor),
		Observer:    observer,
	}

	return cli.NewRootCmd(app).Execute()
}
