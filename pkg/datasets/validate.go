package datasets

import "fmt"

// Validate checks the configuration for errors and applies defaults.
func (c *DatasetsConfig) Validate() error {
	if len(c.Datasets) == 0 {
		return fmt.Errorf("no datasets specified in configuration")
	}

	seen := make(map[int]bool)
	for i := range c.Datasets {
		warnings, err := c.Datasets[i].Validate(i + 1)
		if err != nil {
			return fmt.Errorf("dataset %d: %w", i+1, err)
		}
		if seen[c.Datasets[i].ID] {
			return fmt.Errorf(
				"dataset %d: duplicate id %d", i+1, c.Datasets[i].ID,
			)
		}
		seen[c.Datasets[i].ID] = true
		c.Warnings = append(c.Warnings, warnings...)
	}

	return nil
}

// Validate checks a single dataset configuration. File existence checks
// are deferred to the I/O layer at ingest time. Returns warnings for
// non-fatal issues and an error for fatal ones.
func (d *DatasetConfig) Validate(index int) ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	if d.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}
	if d.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if d.Format == "" {
		d.Format = inferFormat(d.Path)
		if d.Format == "" {
			return nil, fmt.Errorf(
				"cannot infer format from path '%s': set 'format: csv' or 'format: xlsx'",
				d.Path,
			)
		}
	}
	if d.Format != FormatCSV && d.Format != FormatXLSX {
		return nil, fmt.Errorf(
			"invalid format '%s': must be '%s' or '%s'",
			d.Format, FormatCSV, FormatXLSX,
		)
	}

	if d.Format == FormatCSV && d.MetadataPath == "" {
		return nil, fmt.Errorf(
			"metadata_path is required for CSV datasets: rows carry no coordinates",
		)
	}

	if d.Profile != "" && d.Profile != "strict" && d.Profile != "lenient" {
		warnings = append(warnings, ValidationWarning{
			DatasetID:  d.ID,
			Field:      "profile",
			Message:    fmt.Sprintf("unknown profile '%s', ignored", d.Profile),
			Suggestion: "Use 'strict' or 'lenient', or omit to inherit the global setting",
		})
		d.Profile = ""
	}

	if d.Sheet != "" && d.Format == FormatCSV {
		warnings = append(warnings, ValidationWarning{
			DatasetID:  d.ID,
			Field:      "sheet",
			Message:    "sheet is set on a CSV dataset and has no effect",
			Suggestion: "Remove 'sheet' or change 'format' to 'xlsx'",
		})
	}

	return warnings, nil
}
