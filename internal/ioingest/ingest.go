// Package ioingest reads survey files (CSV and XLSX) and normalizes
// their rows into LocationRecords. This is an impure I/O package
// implementing the ednamap.Ingestor contract; all grouping and merging
// math lives in pkg/grouping and pkg/aggregate.
package ioingest

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/grouping"
	"github.com/gnames/ednamap/pkg/parserpool"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

type ingestor struct {
	cfg  *config.Config
	pool parserpool.Pool
}

// New creates an Ingestor. The parser pool may be nil when
// canonicalization is disabled.
func New(cfg *config.Config, pool parserpool.Pool) ednamap.Ingestor {
	return &ingestor{cfg: cfg, pool: pool}
}

// Ingest reads all datasets concurrently, bounded by JobsNumber.
// Results keep dataset order regardless of completion order. Grouping
// runs once over the combined rows, so datasets sampling the same
// coordinates share a single location instead of producing duplicate
// location IDs.
func (ing *ingestor) Ingest(
	ctx context.Context,
	ds []datasets.DatasetConfig,
) (*ednamap.IngestResult, error) {
	type outcome struct {
		rows        []record.Row
		placeholder *record.LocationRecord
		report      ednamap.DatasetReport
	}

	outcomes := make([]outcome, len(ds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(ing.cfg.JobsNumber, 1))

	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, ph, report := ing.ingestOne(d)
			outcomes[i] = outcome{rows: rows, placeholder: ph, report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &ednamap.IngestResult{}
	var allRows []record.Row
	var placeholders []record.LocationRecord
	failed := 0
	for _, o := range outcomes {
		allRows = append(allRows, o.rows...)
		res.Reports = append(res.Reports, o.report)
		if o.placeholder != nil {
			placeholders = append(placeholders, *o.placeholder)
		}
		if o.report.Failed {
			failed++
		}
	}

	if len(ds) > 0 && failed == len(ds) && len(placeholders) == 0 {
		return nil, AllFailedError(len(ds))
	}

	res.Locations = grouping.Build(allRows)

	// Placeholders only stand in for coordinates no real data reached.
	seen := make(map[string]struct{}, len(res.Locations))
	for _, loc := range res.Locations {
		seen[loc.ID] = struct{}{}
	}
	for _, ph := range placeholders {
		if _, ok := seen[ph.ID]; ok {
			continue
		}
		seen[ph.ID] = struct{}{}
		res.Locations = append(res.Locations, ph)
	}
	return res, nil
}

// Inspect parses one dataset and reports what ingestion would produce,
// including the file's sheet names and header row.
func (ing *ingestor) Inspect(
	ctx context.Context,
	d datasets.DatasetConfig,
) (*ednamap.DatasetReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, _, report := ing.ingestOne(d)
	ing.inspectDetails(d, &report)
	return &report, nil
}

// inspectDetails adds the file structure to a report: sheet names and
// the header row of the inspected sheet for workbooks, the CSV header
// otherwise. Failures here are ignored, the parse report stands alone.
func (ing *ingestor) inspectDetails(
	d datasets.DatasetConfig,
	report *ednamap.DatasetReport,
) {
	switch d.Format {
	case datasets.FormatXLSX:
		f, err := excelize.OpenFile(d.Path)
		if err != nil {
			return
		}
		defer f.Close()

		report.Sheets = f.GetSheetList()
		sheet := d.Sheet
		if sheet == "" {
			sheet = ing.cfg.Ingest.Sheet
		}
		rows, err := f.GetRows(sheet)
		if err == nil && len(rows) > 0 {
			report.Columns = rows[0]
		}
	default:
		f, err := os.Open(d.Path)
		if err != nil {
			return
		}
		defer f.Close()

		header, err := csv.NewReader(f).Read()
		if err == nil {
			report.Columns = header
		}
	}
}

func (ing *ingestor) ingestOne(
	d datasets.DatasetConfig,
) ([]record.Row, *record.LocationRecord, ednamap.DatasetReport) {
	report := ednamap.DatasetReport{
		DatasetID: d.ID,
		Title:     d.Title,
		Path:      d.Path,
		Format:    d.Format,
	}
	profile := ing.effectiveProfile(d)

	var rows []record.Row
	var stats parseStats
	var err error

	switch d.Format {
	case datasets.FormatXLSX:
		rows, stats, err = ing.readXLSX(d, profile)
	default:
		rows, stats, err = ing.readCSV(d, profile)
	}

	report.Rows = stats.rows
	report.Dropped = stats.dropped

	if err != nil {
		slog.Error("dataset ingestion failed",
			"dataset", d.ID, "path", d.Path, "error", err)
		report.Failed = true
		report.Error = err.Error()
		if loc, ok := ing.placeholder(d); ok {
			report.Locations = 1
			return nil, &loc, report
		}
		return nil, nil, report
	}

	report.Locations = distinctLocations(rows)
	slog.Info("dataset ingested",
		"dataset", d.ID, "rows", stats.rows,
		"dropped", stats.dropped, "locations", report.Locations)
	return rows, nil, report
}

// distinctLocations counts the distinct coordinate keys a dataset's rows
// would group into.
func distinctLocations(rows []record.Row) int {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[grouping.LocationKey(r.Lat, r.Lon)] = struct{}{}
	}
	return len(seen)
}

// placeholder builds an empty location for a failed dataset when its
// metadata file still names a coordinate. The map then shows the point
// with a fallback message instead of silently losing it.
func (ing *ingestor) placeholder(
	d datasets.DatasetConfig,
) (record.LocationRecord, bool) {
	if d.MetadataPath == "" {
		return record.LocationRecord{}, false
	}
	meta, err := loadMetadata(d.MetadataPath)
	if err != nil {
		return record.LocationRecord{}, false
	}
	return grouping.Placeholder(meta), true
}

// effectiveProfile resolves the reads-parsing profile: the dataset's own
// setting wins; otherwise CSV files default to lenient (their reads
// column has historically been coerced, not validated) and XLSX files
// follow the global setting.
func (ing *ingestor) effectiveProfile(d datasets.DatasetConfig) string {
	if d.Profile != "" {
		return d.Profile
	}
	if d.Format == datasets.FormatCSV {
		return config.ProfileLenient
	}
	return ing.cfg.Ingest.Profile
}

// canonical enriches a scientific name when the parser pool is enabled.
func (ing *ingestor) canonical(name string) string {
	if ing.pool == nil || !ing.cfg.Ingest.WithCanonical {
		return ""
	}
	return ing.pool.Canonical(name)
}

// parseStats counts rows seen and rows dropped during one file read.
type parseStats struct {
	rows    int
	dropped int
}
