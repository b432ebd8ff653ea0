package iodatasets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/ednamap/pkg/datasets"
	"gopkg.in/yaml.v3"
)

// loadDatasetsConfig reads and validates a datasets.yaml file. Relative
// and "~/" paths inside the registry resolve against the user's home
// directory.
func loadDatasetsConfig(path string) (*datasets.DatasetsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read datasets config file: %w", err)
	}

	var cfg datasets.DatasetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse datasets config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for i := range cfg.Datasets {
		cfg.Datasets[i].Path = expandPath(cfg.Datasets[i].Path)
		cfg.Datasets[i].MetadataPath = expandPath(cfg.Datasets[i].MetadataPath)
	}

	return &cfg, nil
}

func expandPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
