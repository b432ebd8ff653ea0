package datasets

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// inferFormat guesses the dataset format from the file extension.
// Returns an empty string for unknown extensions.
func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	return ""
}

// Filter selects datasets by the filter string.
// Supported filters:
//   - "1,3,5": datasets with the listed IDs
//   - "3-7": datasets with IDs in range [3, 7]
//   - "-5": IDs from 1 to 5; "4-": IDs from 4 to the maximum
//   - "1,5,10-20": mix of IDs and ranges
//   - "": all datasets
//
// Returns the matching datasets, warnings for requested IDs that do not
// exist, and an error when nothing matches a non-empty filter.
func Filter(
	ds []DatasetConfig,
	filter string,
) ([]DatasetConfig, []string, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return ds, nil, nil
	}

	requestedIDs := make(map[int]bool)
	explicitIDs := make(map[int]bool)
	var warnings []string

	for _, item := range strings.Split(filter, ",") {
		item = strings.TrimSpace(item)

		if strings.Contains(item, "-") {
			start, end, err := parseRange(item, ds)
			if err != nil {
				return nil, nil, fmt.Errorf(
					"failed to parse range '%s': %w", item, err,
				)
			}
			matched := false
			for id := start; id <= end; id++ {
				requestedIDs[id] = true
				if datasetExists(ds, id) {
					matched = true
				}
			}
			if !matched {
				warnings = append(warnings,
					fmt.Sprintf("range '%s' matched no datasets", item))
			}
			continue
		}

		id, err := strconv.Atoi(item)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"invalid dataset ID '%s': must be a number or range", item,
			)
		}
		requestedIDs[id] = true
		explicitIDs[id] = true
	}

	var filtered []DatasetConfig
	foundIDs := make(map[int]bool)
	for _, d := range ds {
		if requestedIDs[d.ID] {
			filtered = append(filtered, d)
			foundIDs[d.ID] = true
		}
	}

	for id := range explicitIDs {
		if !foundIDs[id] {
			warnings = append(warnings,
				fmt.Sprintf("dataset ID %d not found in configuration", id))
		}
	}

	if len(filtered) == 0 {
		if len(warnings) > 0 {
			return nil, warnings, fmt.Errorf(
				"no datasets matched filter '%s': %s",
				filter, strings.Join(warnings, "; "),
			)
		}
		return nil, nil, fmt.Errorf("no datasets matched filter '%s'", filter)
	}

	return filtered, warnings, nil
}

// parseRange parses "3-7", "-5", or "4-" into inclusive bounds.
func parseRange(rangeStr string, ds []DatasetConfig) (int, int, error) {
	parts := strings.Split(rangeStr, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid format: expected 'X-Y', '-Y', or 'X-'")
	}

	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	var start, end int
	var err error

	switch {
	case startStr == "":
		start = 1
		end, err = strconv.Atoi(endStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end value: %w", err)
		}
	case endStr == "":
		start, err = strconv.Atoi(startStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid start value: %w", err)
		}
		end = findMaxDatasetID(ds)
		if end == 0 {
			return 0, 0, fmt.Errorf(
				"no datasets available to determine end of range",
			)
		}
	default:
		start, err = strconv.Atoi(startStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid start value: %w", err)
		}
		end, err = strconv.Atoi(endStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end value: %w", err)
		}
	}

	if start > end {
		return 0, 0, fmt.Errorf("start (%d) must be <= end (%d)", start, end)
	}
	return start, end, nil
}

func findMaxDatasetID(ds []DatasetConfig) int {
	maxID := 0
	for _, d := range ds {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	return maxID
}

func datasetExists(ds []DatasetConfig, id int) bool {
	for _, d := range ds {
		if d.ID == id {
			return true
		}
	}
	return false
}
