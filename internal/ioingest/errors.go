package ioingest

import (
	"fmt"
	"strings"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError creates an error for when a survey file cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open survey file

<em>File:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Wrong path in datasets.yaml
  - Insufficient permissions

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Check the <em>path</em> field of the dataset entry`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.IngestOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open survey file: %w", err),
	}
}

// FormatError creates an error for a malformed survey file.
func FormatError(path string, err error) error {
	msg := `Cannot parse survey file

<em>File:</em> %s

<em>Possible causes:</em>
  - File is not valid CSV
  - File is truncated or corrupted

<em>How to fix:</em>
  1. Open the file and check its contents
  2. Re-export the file from its source`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.IngestFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to parse survey file: %w", err),
	}
}

// SheetNotFoundError creates an error for a missing workbook sheet.
func SheetNotFoundError(path, sheet string, err error) error {
	msg := `Sheet not found in workbook

<em>File:</em> %s
<em>Sheet:</em> %s

<em>How to fix:</em>
  1. List the workbook's sheets and pick an existing one
  2. Set the <em>sheet</em> field of the dataset entry, or
     <em>ingest.sheet</em> in config.yaml`

	vars := []any{path, sheet}

	return &gn.Error{
		Code: errcode.IngestSheetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sheet %q not found: %w", sheet, err),
	}
}

// MissingColumnsError creates an error for a workbook whose header row
// lacks required columns.
func MissingColumnsError(path string, missing []string) error {
	msg := `Required columns missing from workbook

<em>File:</em> %s
<em>Missing:</em> %s

<em>How to fix:</em>
  1. Check the header row of the sheet
  2. Rename columns to recognized spellings (x, y, reads,
     scientific_name or common_name)`

	vars := []any{path, strings.Join(missing, ", ")}

	return &gn.Error{
		Code: errcode.IngestFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"missing required columns: %s", strings.Join(missing, ", "),
		),
	}
}

// MetadataError creates an error for when a metadata JSON file cannot
// be read or decoded.
func MetadataError(path string, err error) error {
	msg := `Cannot load location metadata

<em>Metadata file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid JSON format

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate JSON syntax
  3. Check the <em>metadata_path</em> field of the dataset entry`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.IngestMetadataError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load metadata: %w", err),
	}
}

// AllFailedError creates an error for when every registered dataset
// failed to ingest.
func AllFailedError(count int) error {
	msg := `All datasets failed to ingest

<em>Datasets tried:</em> %d

<em>How to fix:</em>
  1. Check the per-dataset errors in the log
  2. Fix paths and formats in datasets.yaml
  3. Inspect a single dataset: <em>ednamap inspect <id></em>`

	vars := []any{count}

	return &gn.Error{
		Code: errcode.IngestAllFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d datasets failed", count),
	}
}
