package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/ednamap/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "ednamap"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "ednamap"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "ednamap", "logs"),
		},
		{
			msg: "datasets file",
			fn:  config.DatasetsFilePath,
			res: filepath.Join(tempHome, ".config", "ednamap", "datasets.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ednamap", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 50_000, cfg.Database.BatchSize)

		// Ingest defaults
		assert.Equal(t, "strict", cfg.Ingest.Profile)
		assert.Equal(t, config.DefaultSheet, cfg.Ingest.Sheet)

		// Map defaults
		assert.InDelta(t, 13.0, cfg.Map.Zoom, 1e-9)
		assert.InDelta(t, 30.0, cfg.Map.BaseRadiusMeters, 1e-9)
		assert.Equal(t, 128, cfg.Map.IconCacheSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionIngestProfile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets lenient profile",
			input:    "lenient",
			expected: "lenient",
		},
		{
			name:     "normalizes case",
			input:    "  Strict ",
			expected: "strict",
		},
		{
			name:     "rejects unknown profile",
			input:    "permissive",
			expected: "strict", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptIngestProfile(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Ingest.Profile)
		})
	}
}

func TestOptionMapCenter(t *testing.T) {
	tests := []struct {
		name             string
		lat, lon         float64
		wantLat, wantLon float64
	}{
		{
			name: "sets valid center",
			lat:  35.1, lon: 129.0,
			wantLat: 35.1, wantLon: 129.0,
		},
		{
			name: "rejects latitude out of range",
			lat:  95.0, lon: 129.0,
			wantLat: 37.5665, wantLon: 126.978,
		},
		{
			name: "rejects longitude out of range",
			lat:  35.1, lon: 200.0,
			wantLat: 37.5665, wantLon: 126.978,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptMapCenter(tt.lat, tt.lon)})
			assert.InDelta(t, tt.wantLat, cfg.Map.CenterLat, 1e-9)
			assert.InDelta(t, tt.wantLon, cfg.Map.CenterLon, 1e-9)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptIngestProfile("lenient"),
		config.OptServerPort(9999),
		config.OptMapZoom(9),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Ingest.Profile, clone.Ingest.Profile)
	assert.Equal(t, cfg.Server.Port, clone.Server.Port)
	assert.InDelta(t, cfg.Map.Zoom, clone.Map.Zoom, 1e-9)
	assert.Equal(t, cfg.Database, clone.Database)
	assert.Equal(t, cfg.Log, clone.Log)
}
