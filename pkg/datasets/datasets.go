// Package datasets provides configuration and validation for sampling
// dataset sources.
//
// This package defines the schema for datasets.yaml, which users provide
// to point the ingester at their survey files. Each entry names one CSV
// or XLSX file plus the metadata the file itself lacks. Loading the
// files is the I/O layer's job.
package datasets

// Datasets loads the datasets.yaml registry.
type Datasets interface {
	Load() (*DatasetsConfig, error)
}

// DatasetsConfig represents the complete datasets.yaml configuration
// file.
type DatasetsConfig struct {
	// Datasets is the list of survey files to ingest.
	Datasets []DatasetConfig `yaml:"datasets"`

	// Warnings holds non-fatal validation issues (not serialized).
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	DatasetID  int    // ID of the dataset
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// DatasetConfig represents configuration for a single survey file.
type DatasetConfig struct {
	// ID identifies the dataset. Required, unique within the registry.
	ID int `yaml:"id"`

	// Path to the CSV or XLSX file.
	Path string `yaml:"path"`

	// Title is a human-readable dataset name for reports and logs.
	Title string `yaml:"title,omitempty"`

	// Format is "csv" or "xlsx". Inferred from the path extension when
	// empty.
	Format string `yaml:"format,omitempty"`

	// Sheet overrides the default worksheet name for XLSX files.
	Sheet string `yaml:"sheet,omitempty"`

	// Profile overrides the reads-parsing profile ("strict" or
	// "lenient") for this dataset.
	Profile string `yaml:"profile,omitempty"`

	// MetadataPath points to the per-location JSON metadata file.
	// Required for CSV datasets, whose rows carry no coordinates.
	MetadataPath string `yaml:"metadata_path,omitempty"`

	// Date supplies the sampling date for CSV datasets whose rows lack
	// a date column.
	Date int `yaml:"date,omitempty"`
}

// FormatCSV and FormatXLSX are the supported dataset file formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)
