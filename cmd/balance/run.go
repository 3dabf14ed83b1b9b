package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/AmmoBalance_Go/internal/ammoconfig"
	"github.com/osse101/AmmoBalance_Go/internal/catalog"
	"github.com/osse101/AmmoBalance_Go/internal/catalogedit"
	"github.com/osse101/AmmoBalance_Go/internal/config"
	"github.com/osse101/AmmoBalance_Go/internal/logger"
	"github.com/osse101/AmmoBalance_Go/internal/metrics"
	"github.com/osse101/AmmoBalance_Go/internal/redistribution"
)

const (
	moduleRedistribution = "redistribution"
	moduleCatalogEdit    = "catalogedit"
)

// run loads the balancing config and catalog, applies the redistribution pass
// followed by the field edits, and writes the patched catalog.
func run(ctx context.Context, cfg *config.Config) error {
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	log := logger.FromContext(ctx)

	loader := ammoconfig.NewLoader()
	ammoCfg, err := loader.Load(cfg.AmmoConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load ammo config: %w", err)
	}
	if err := loader.Validate(ammoCfg); err != nil {
		return fmt.Errorf("invalid ammo config: %w", err)
	}

	store := catalog.NewStore()
	tables, err := store.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Loaded inputs", "records", len(ammoCfg.Records), "items", len(tables.Items))

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	opts := redistribution.DefaultOptions()
	if len(cfg.Maps) > 0 {
		opts.Maps = cfg.Maps
	}
	opts.IdempotentSpawns = cfg.IdempotentSpawns
	opts.Metrics = rec

	summary := redistribution.NewService(logger.NewReporter(ctx, moduleRedistribution), opts).
		Run(ctx, tables, ammoCfg.Records)
	edits := catalogedit.NewEditor(logger.NewReporter(ctx, moduleCatalogEdit), rec).
		Apply(ctx, tables, ammoCfg.Records)

	if err := store.Save(cfg.OutputPath, tables); err != nil {
		return err
	}

	if cfg.MetricsPath != "" {
		if err := metrics.WriteTextFile(reg, cfg.MetricsPath); err != nil {
			return err
		}
	}

	log.Info("Balancing finished",
		"output", cfg.OutputPath,
		"groups", summary.GroupsPatched,
		"groups_skipped", summary.GroupsSkipped,
		"records_skipped", summary.RecordsSkipped,
		"field_edits", edits.Edits,
		"field_misses", edits.Misses)
	return nil
}
