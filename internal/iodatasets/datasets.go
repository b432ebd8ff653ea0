// Package iodatasets loads the datasets.yaml registry from the config
// directory. This is an impure I/O package implementing the
// datasets.Datasets contract.
package iodatasets

import (
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/datasets"
)

type iodatasets struct {
	cfg *config.Config
}

func New(cfg *config.Config) datasets.Datasets {
	res := iodatasets{cfg: cfg}
	return &res
}

func (s *iodatasets) Load() (*datasets.DatasetsConfig, error) {
	datasetsPath := config.DatasetsFilePath(s.cfg.HomeDir)
	datasetsConfig, err := loadDatasetsConfig(datasetsPath)
	if err != nil {
		return nil, DatasetsConfigError(datasetsPath, err)
	}
	return datasetsConfig, nil
}
