package ioingest

import (
	"os"

	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/gnfmt"
)

// metaFile mirrors the per-location JSON metadata that accompanies CSV
// survey files.
type metaFile struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"location"`
	Taxon   string `json:"taxon"`
	Marker  string `json:"marker"`
	Manager string `json:"manager"`
	Primer  string `json:"primer"`
	Object  string `json:"object"`
}

// loadMetadata reads and decodes a metadata JSON file.
func loadMetadata(path string) (record.LocationMeta, error) {
	var res record.LocationMeta

	data, err := os.ReadFile(path)
	if err != nil {
		return res, MetadataError(path, err)
	}

	enc := gnfmt.GNjson{}
	var mf metaFile
	if err := enc.Decode(data, &mf); err != nil {
		return res, MetadataError(path, err)
	}

	res = record.LocationMeta{
		Location: record.Coordinate{
			Lat: mf.Location.Lat,
			Lon: mf.Location.Lon,
		},
		Taxon:       mf.Taxon,
		MarkerLabel: mf.Marker,
		Manager:     mf.Manager,
		Primer:      mf.Primer,
		Purpose:     mf.Object,
	}
	return res, nil
}
