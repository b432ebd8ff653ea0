// Package ednamap defines the high-level lifecycle interfaces of the
// sampling-results map: ingesting survey files, persisting the resulting
// LocationRecords, and exporting them to PostgreSQL.
//
// Implementations live in internal/io* packages; everything here is
// interfaces and result types so pure packages can depend on them
// without touching I/O.
package ednamap

import (
	"context"

	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/gnames/ednamap/pkg/record"
)

var (
	// Version is set by build flags.
	Version = "v0.0.1"

	// Build is the build timestamp set by build flags.
	Build string
)

// Ingestor parses registered dataset files into LocationRecords.
type Ingestor interface {
	// Ingest reads all given datasets concurrently and returns their
	// combined LocationRecords together with per-dataset reports.
	// Datasets sampling the same coordinates merge into one location.
	// A dataset that fails to parse yields a placeholder location when
	// its metadata names a coordinate no other dataset covers, and a
	// failed report entry either way; Ingest returns an error only when
	// every dataset fails without leaving a placeholder.
	Ingest(
		ctx context.Context,
		ds []datasets.DatasetConfig,
	) (*IngestResult, error)

	// Inspect parses one dataset without building records and reports
	// what ingestion would do with it.
	Inspect(
		ctx context.Context,
		d datasets.DatasetConfig,
	) (*DatasetReport, error)
}

// IngestResult is the combined outcome of one ingestion run.
type IngestResult struct {
	// Locations grouped across all successfully parsed datasets in
	// first-encounter order, followed by placeholders for failed ones.
	Locations []record.LocationRecord

	// Reports in dataset order, one per input dataset.
	Reports []DatasetReport
}

// DatasetReport summarizes the ingestion of a single dataset.
type DatasetReport struct {
	DatasetID int    `json:"datasetID"`
	Title     string `json:"title,omitempty"`
	Path      string `json:"path"`
	Format    string `json:"format"`

	// Rows seen in the file, rows dropped during validation (missing
	// common name, date or coordinates, bad reads under the strict
	// profile), and distinct locations the dataset's rows cover.
	Rows      int `json:"rows"`
	Dropped   int `json:"dropped"`
	Locations int `json:"locations"`

	// Failed is set when the file could not be parsed at all; Error
	// holds the cause.
	Failed bool   `json:"failed,omitempty"`
	Error  string `json:"error,omitempty"`

	// Sheets and Columns are filled by Inspect only: the workbook's
	// sheet names and the header row of the inspected sheet.
	Sheets  []string `json:"sheets,omitempty"`
	Columns []string `json:"columns,omitempty"`
}

// Store persists LocationRecords between sessions.
type Store interface {
	// Save replaces the stored record set.
	Save(ctx context.Context, locs []record.LocationRecord) error

	// Load returns the stored record set, empty when nothing was saved
	// yet.
	Load(ctx context.Context) ([]record.LocationRecord, error)

	// Close releases the underlying database handle.
	Close() error
}

// Exporter writes LocationRecords into a PostgreSQL database for
// downstream analysis.
type Exporter interface {
	// Export migrates the schema and bulk-loads the records. Re-running
	// with the same records overwrites the previous export.
	Export(ctx context.Context, locs []record.LocationRecord) error
}
