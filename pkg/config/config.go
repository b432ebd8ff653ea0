// Package config provides configuration management for ednamap.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use EDNAMAP_ prefix with underscores for nesting:
//
//	EDNAMAP_DATABASE_HOST=localhost
//	EDNAMAP_SERVER_PORT=8080
//	EDNAMAP_LOG_LEVEL=info
//	EDNAMAP_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete ednamap configuration.
type Config struct {
	// Database contains PostgreSQL connection settings for the export
	// command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Ingest contains settings for the tabular ingestion pipeline.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	// Map contains marker layout and map view settings.
	Map MapConfig `mapstructure:"map" yaml:"map"`

	// Server contains HTTP API settings for the serve command.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of datasets ingested concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows per bulk COPY batch during
	// export. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// IngestConfig contains settings for the ingestion pipeline.
type IngestConfig struct {
	// Profile selects how an unparsable reads value is handled.
	// "strict" rejects the row (spreadsheet default), "lenient" coerces
	// it to zero (CSV default). The two source ingestion paths disagree
	// on this, so it stays a user-visible choice.
	Profile string `mapstructure:"profile" yaml:"profile"`

	// Sheet is the spreadsheet sheet name holding sampling rows.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// WithCanonical enables scientific-name canonicalization through
	// gnparser during ingestion.
	WithCanonical bool `mapstructure:"with_canonical" yaml:"with_canonical"`
}

// MapConfig contains marker layout and default map view settings.
type MapConfig struct {
	// CenterLat and CenterLon define the default map center.
	CenterLat float64 `mapstructure:"center_lat" yaml:"center_lat"`
	CenterLon float64 `mapstructure:"center_lon" yaml:"center_lon"`

	// Zoom is the default map zoom level.
	Zoom float64 `mapstructure:"zoom" yaml:"zoom"`

	// BaseRadiusMeters is the declutter circle radius at the reference
	// zoom level before zoom scaling is applied.
	BaseRadiusMeters float64 `mapstructure:"base_radius_meters" yaml:"base_radius_meters"`

	// MarkerBaseSize is the display size factor of a singleton marker.
	MarkerBaseSize float64 `mapstructure:"marker_base_size" yaml:"marker_base_size"`

	// IconCacheSize bounds the number of marker icons kept in memory.
	IconCacheSize int `mapstructure:"icon_cache_size" yaml:"icon_cache_size"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	// Host is the listen address of the HTTP API.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the listen port of the HTTP API.
	Port int `mapstructure:"port" yaml:"port"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "ednamap",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Ingest: IngestConfig{
			Profile: "strict",
			Sheet:   DefaultSheet,
		},
		Map: MapConfig{
			// Seoul City Hall, the default view of the source data.
			CenterLat:        37.5665,
			CenterLon:        126.978,
			Zoom:             13,
			BaseRadiusMeters: 30,
			MarkerBaseSize:   1.0,
			IconCacheSize:    128,
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
