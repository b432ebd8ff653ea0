package ioingest

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/gnames/ednamap/pkg/record"
)

// readCSV parses a CSV survey file. The format is positional: after the
// header row, column 0 is the scientific name, column 1 the common name,
// column 2 the reads count. CSV rows carry no coordinates or dates, so
// both come from the dataset's metadata file and registry entry.
func (ing *ingestor) readCSV(
	d datasets.DatasetConfig,
	profile string,
) ([]record.Row, parseStats, error) {
	var stats parseStats

	meta, err := loadMetadata(d.MetadataPath)
	if err != nil {
		return nil, stats, err
	}

	f, err := os.Open(d.Path)
	if err != nil {
		return nil, stats, OpenError(d.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header row.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, stats, nil
		}
		return nil, stats, FormatError(d.Path, err)
	}

	var rows []record.Row
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, FormatError(d.Path, err)
		}
		stats.rows++

		var sci, common, readsRaw string
		if len(fields) > 0 {
			sci = fields[0]
		}
		if len(fields) > 1 {
			common = fields[1]
		}
		if len(fields) > 2 {
			readsRaw = fields[2]
		}

		obs, ok := ing.buildObservation(sci, common, readsRaw, meta.Taxon, profile)
		if !ok {
			stats.dropped++
			continue
		}

		rows = append(rows, record.Row{
			Lat:  meta.Location.Lat,
			Lon:  meta.Location.Lon,
			Date: d.Date,
			Obs:  obs,
			Meta: record.SamplingMeta{
				Purpose:     meta.Purpose,
				Manager:     meta.Manager,
				Primer:      meta.Primer,
				MarkerLabel: meta.MarkerLabel,
			},
		})
	}

	return rows, stats, nil
}

// buildObservation normalizes one species row. The common name is
// required; the scientific name falls back to it when missing. Rows
// without a common name are dropped. Unparsable reads values follow the
// profile: strict drops the row, lenient coerces to zero.
func (ing *ingestor) buildObservation(
	sci, common, readsRaw, taxon, profile string,
) (record.Observation, bool) {
	sci = trim(sci)
	common = trim(common)
	if common == "" {
		return record.Observation{}, false
	}
	if sci == "" {
		sci = common
	}

	reads, ok := parseReads(readsRaw)
	if !ok {
		if profile == config.ProfileStrict {
			return record.Observation{}, false
		}
		reads = 0
	}

	return record.Observation{
		ScientificName: sci,
		CommonName:     common,
		ReadsCount:     reads,
		Taxon:          trim(taxon),
		Canonical:      ing.canonical(sci),
	}, true
}
