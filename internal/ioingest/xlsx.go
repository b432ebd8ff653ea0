package ioingest

import (
	"strconv"
	"strings"

	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/xuri/excelize/v2"
)

// columnAliases maps canonical column keys to the header spellings seen
// in source workbooks. Matching is case-insensitive on trimmed headers.
var columnAliases = map[string][]string{
	"date":    {"date", "sampling"},
	"lon":     {"x"},
	"lat":     {"y"},
	"common":  {"common_name", "common name"},
	"sci":     {"scientific_name", "scientific name"},
	"reads":   {"read", "reads"},
	"taxa":    {"taxa"},
	"do":      {"do(mg/l)"},
	"spc":     {"spc(us/cm)"},
	"ph":      {"ph"},
	"primer":  {"primer"},
	"manager": {"manager"},
	"marker":  {"marker"},
	"object":  {"object"},
}

// requiredColumns must resolve or the sheet is unusable.
var requiredColumns = []string{"lat", "lon", "reads"}

// readXLSX parses a spreadsheet survey file. Unlike CSV, spreadsheet
// rows carry their own coordinates, dates and environment readings.
func (ing *ingestor) readXLSX(
	d datasets.DatasetConfig,
	profile string,
) ([]record.Row, parseStats, error) {
	var stats parseStats

	f, err := excelize.OpenFile(d.Path)
	if err != nil {
		return nil, stats, OpenError(d.Path, err)
	}
	defer f.Close()

	sheet := d.Sheet
	if sheet == "" {
		sheet = ing.cfg.Ingest.Sheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, stats, SheetNotFoundError(d.Path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, stats, nil
	}

	cols, err := resolveColumns(d.Path, rows[0])
	if err != nil {
		return nil, stats, err
	}

	var res []record.Row
	for _, cells := range rows[1:] {
		stats.rows++

		date, dateOK := parseDate(cell(cells, cols["date"]))
		lat, latOK := parseCoord(cell(cells, cols["lat"]))
		lon, lonOK := parseCoord(cell(cells, cols["lon"]))
		if !dateOK || !latOK || !lonOK {
			stats.dropped++
			continue
		}

		obs, ok := ing.buildObservation(
			cell(cells, cols["sci"]),
			cell(cells, cols["common"]),
			cell(cells, cols["reads"]),
			cell(cells, cols["taxa"]),
			profile,
		)
		if !ok {
			stats.dropped++
			continue
		}

		res = append(res, record.Row{
			Lat:  lat,
			Lon:  lon,
			Date: date,
			Obs:  obs,
			Env: record.EnvReadings{
				DissolvedOxygen:     parseFloatPtr(cell(cells, cols["do"])),
				SpecificConductance: parseFloatPtr(cell(cells, cols["spc"])),
				PH:                  parseFloatPtr(cell(cells, cols["ph"])),
			},
			Meta: record.SamplingMeta{
				Purpose:     cell(cells, cols["object"]),
				Manager:     cell(cells, cols["manager"]),
				Primer:      cell(cells, cols["primer"]),
				MarkerLabel: cell(cells, cols["marker"]),
			},
		})
	}

	return res, stats, nil
}

// resolveColumns maps canonical keys to column indices from the header
// row. Missing optional columns get index -1.
func resolveColumns(path string, header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(trim(h))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	for key, aliases := range columnAliases {
		cols[key] = -1
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				cols[key] = i
				break
			}
		}
	}

	var missing []string
	for _, key := range requiredColumns {
		if cols[key] == -1 {
			missing = append(missing, key)
		}
	}
	if cols["sci"] == -1 && cols["common"] == -1 {
		missing = append(missing, "species name")
	}
	if len(missing) > 0 {
		return nil, MissingColumnsError(path, missing)
	}
	return cols, nil
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func parseCoord(s string) (float64, bool) {
	s = trim(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
