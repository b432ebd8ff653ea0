package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "ednamap"
)

const (
	// ProfileStrict rejects rows with unparsable reads values,
	// ProfileLenient coerces them to zero.
	ProfileStrict  = "strict"
	ProfileLenient = "lenient"

	// DefaultSheet is the spreadsheet sheet that holds sampling rows in
	// the source workbooks ("complete summary" in Korean).
	DefaultSheet = "전체 정리"

	// CoordTolerance is the locality tolerance in degrees (~11 m) used
	// for marker decluttering. Distinct from the 6-decimal rounding
	// (~0.11 m) used as the grouping key - the two must not be
	// conflated.
	CoordTolerance = 1e-4
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ednamap by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/ednamap by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ednamap/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ednamap/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the datasets.yaml file.
// Returns ~/.config/ednamap/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

// StoreFilePath returns the default path of the local SQLite store.
// Returns ~/.cache/ednamap/locations.sqlite by default.
func StoreFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "locations.sqlite")
}
