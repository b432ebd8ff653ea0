// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/gnames/ednamap/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration
	// tests, so tests never run against a production database.
	TestDatabaseName = "ednamap_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies EDNAMAP_DATABASE_* environment
// overrides, and forces the database name to TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	if v := os.Getenv("EDNAMAP_DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("EDNAMAP_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("EDNAMAP_DATABASE_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("EDNAMAP_DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	// Always use the test database for safety.
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHomeDir points the application home at a temporary directory
// so tests never touch real config or cache files. Cleanup happens
// automatically when the test finishes.
func SetupTempHomeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("EDNAMAP_HOME_DIR", dir)
	return dir
}
