package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lawnchairsociety/questgen/internal/config"
	"github.com/lawnchairsociety/questgen/internal/database"
	"github.com/lawnchairsociety/questgen/internal/document"
	"github.com/lawnchairsociety/questgen/internal/lists"
	"github.com/lawnchairsociety/questgen/internal/logger"
	"github.com/lawnchairsociety/questgen/internal/quest"
	"github.com/lawnchairsociety/questgen/internal/report"
	"github.com/lawnchairsociety/questgen/internal/schema"
)

// Summary describes a completed run
type Summary struct {
	Seed       int64
	Quests     int
	Documents  []document.Info
	ReportPath string
	RunID      int64 // Zero when the catalog index is disabled
}

// run executes one generation: every list is loaded before anything is written,
// so a bad input leaves the previous output untouched
func run(ctx context.Context, cfg *config.GeneratorConfig) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("Generation seed selected", "seed", seed, "random", true)
	} else {
		logger.Info("Generation seed selected", "seed", seed, "random", false)
	}

	subjects, err := lists.Load(cfg.Lists.Dir, cfg.Lists.Files)
	if err != nil {
		return nil, err
	}
	for _, name := range quest.AllListNames() {
		logger.Debug("List loaded", "list", name, "entries", len(subjects[name]))
	}

	catalog, err := quest.NewGenerator(seed).Generate(ctx, subjects)
	if err != nil {
		return nil, fmt.Errorf("failed to generate catalog: %w", err)
	}

	if cfg.ValidateSchema {
		if err := validateCatalog(catalog); err != nil {
			return nil, err
		}
	}

	docs, err := document.NewWriter(cfg.Output.Dir, seed).WriteCatalog(catalog)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Seed:      seed,
		Quests:    catalog.All.Len(),
		Documents: docs,
	}

	if cfg.Report.Enabled {
		if err := report.WriteWorkbook(cfg.Report.Path, catalog); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
		summary.ReportPath = cfg.Report.Path
		logger.Info("Report written", "path", cfg.Report.Path)
	}

	if cfg.Database.Enabled {
		runID, err := recordRun(cfg, seed, catalog, docs)
		if err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		summary.RunID = runID
		logger.Info("Run recorded", "run_id", runID, "driver", cfg.Database.Driver)
	}

	return summary, nil
}

// validateCatalog checks every document and reports all invalid ones together
func validateCatalog(catalog *quest.Catalog) error {
	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}

	var errs []error
	for _, c := range catalog.Documents() {
		if err := validator.ValidateCollection(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func recordRun(cfg *config.GeneratorConfig, seed int64, catalog *quest.Catalog, docs []document.Info) (int64, error) {
	db, err := database.Open(cfg.Database.Config)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	r := &database.Run{Seed: seed, OutputDir: cfg.Output.Dir}
	if err := db.RecordRun(r, catalog, docs); err != nil {
		return 0, err
	}
	return r.ID, nil
}
