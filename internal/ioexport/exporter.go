// Package ioexport implements the ednamap.Exporter interface. It
// migrates the PostgreSQL schema with GORM AutoMigrate and bulk-loads
// LocationRecords with pgx CopyFrom.
package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/ednamap/internal/iodb"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/db"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/ednamap/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type exporter struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates an Exporter on top of a connected database operator.
func New(cfg *config.Config, op db.Operator) ednamap.Exporter {
	return &exporter{cfg: cfg, operator: op}
}

// Export overwrites any previous export: existing tables are dropped,
// the schema is recreated, and all records are bulk-loaded.
func (e *exporter) Export(
	ctx context.Context,
	locs []record.LocationRecord,
) error {
	pool := e.operator.Pool()
	if pool == nil {
		return iodb.NotConnectedError()
	}

	hasTables, err := e.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if hasTables {
		slog.Info("dropping tables from previous export")
		if err := e.operator.DropAllTables(ctx); err != nil {
			return err
		}
	}

	if err := e.migrate(); err != nil {
		return err
	}

	if err := e.insertLocations(ctx, locs); err != nil {
		return err
	}
	if err := e.insertSamplingEvents(ctx, locs); err != nil {
		return err
	}
	if err := e.insertObservations(ctx, locs); err != nil {
		return err
	}

	slog.Info("export finished",
		"locations", humanize.Comma(int64(len(locs))))
	return nil
}

// migrate creates the schema via GORM AutoMigrate over the pgx pool.
func (e *exporter) migrate() error {
	sqlDB := stdlib.OpenDBFromPool(e.operator.Pool())

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return SchemaError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return SchemaError(err)
	}
	return nil
}

func (e *exporter) insertLocations(
	ctx context.Context,
	locs []record.LocationRecord,
) error {
	columns := []string{
		"id", "latitude", "longitude", "dominant_taxon",
		"marker_label", "manager", "primer", "purpose",
		"avg_dissolved_oxygen", "avg_specific_conductance", "avg_ph",
		"unavailable", "updated_at",
	}

	now := time.Now()
	rows := make([][]any, len(locs))
	for i, loc := range locs {
		rows[i] = []any{
			loc.ID, loc.Coordinates.Lat, loc.Coordinates.Lon,
			loc.DominantTaxon, loc.Metadata.MarkerLabel,
			loc.Metadata.Manager, loc.Metadata.Primer,
			loc.Metadata.Purpose,
			loc.EnvAverages.DissolvedOxygen,
			loc.EnvAverages.SpecificConductance,
			loc.EnvAverages.PH,
			loc.Unavailable, now,
		}
	}

	_, err := e.operator.Pool().CopyFrom(
		ctx,
		pgx.Identifier{"locations"},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return CopyError("locations", err)
	}

	slog.Info("inserted locations",
		"count", humanize.Comma(int64(len(rows))))
	return nil
}

func (e *exporter) insertSamplingEvents(
	ctx context.Context,
	locs []record.LocationRecord,
) error {
	columns := []string{
		"location_id", "date",
		"dissolved_oxygen", "specific_conductance", "ph",
		"manager", "primer", "purpose",
	}

	var rows [][]any
	for _, loc := range locs {
		for _, dr := range loc.DateRecords {
			rows = append(rows, []any{
				loc.ID, dr.Date,
				dr.Env.DissolvedOxygen,
				dr.Env.SpecificConductance,
				dr.Env.PH,
				dr.Meta.Manager, dr.Meta.Primer, dr.Meta.Purpose,
			})
		}
	}

	_, err := e.operator.Pool().CopyFrom(
		ctx,
		pgx.Identifier{"sampling_events"},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return CopyError("sampling_events", err)
	}

	slog.Info("inserted sampling events",
		"count", humanize.Comma(int64(len(rows))))
	return nil
}

// insertObservations bulk-loads per-date observations in batches of
// Database.BatchSize rows.
func (e *exporter) insertObservations(
	ctx context.Context,
	locs []record.LocationRecord,
) error {
	columns := []string{
		"location_id", "date",
		"scientific_name", "common_name", "canonical", "taxon",
		"reads_count",
	}

	total := 0
	for _, loc := range locs {
		for _, dr := range loc.DateRecords {
			total += len(dr.Observations)
		}
	}

	batchSize := e.cfg.Database.BatchSize
	if batchSize < 1 {
		batchSize = 50_000
	}

	// Progress bar with known total
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Exporting observations: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var batch [][]any
	var count int

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		_, err := e.operator.Pool().CopyFrom(
			ctx,
			pgx.Identifier{"observations"},
			columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			return CopyError("observations", err)
		}
		count += len(batch)
		bar.Add(len(batch))
		batch = batch[:0]
		return nil
	}

	for _, loc := range locs {
		for _, dr := range loc.DateRecords {
			for _, o := range dr.Observations {
				batch = append(batch, []any{
					loc.ID, dr.Date,
					o.ScientificName, o.CommonName,
					o.Canonical, o.Taxon,
					o.ReadsCount,
				})
				if len(batch) >= batchSize {
					if err := flush(); err != nil {
						return err
					}
				}
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	slog.Info("inserted observations",
		"count", humanize.Comma(int64(count)))
	return nil
}
