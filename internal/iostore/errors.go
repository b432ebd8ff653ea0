package iostore

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError creates an error for when the SQLite store cannot be
// opened or initialized.
func OpenError(path string, err error) error {
	msg := `Cannot open local store

<em>Store file:</em> %s

<em>Possible causes:</em>
  - Parent directory is not writable
  - File is corrupted or not a SQLite database

<em>How to fix:</em>
  1. Check directory permissions: <em>ls -ld %s</em>
  2. Remove the file and re-run <em>ednamap ingest --save</em>`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open store: %w", err),
	}
}

// SaveError creates an error for a failed store write.
func SaveError(path string, err error) error {
	msg := `Cannot save locations to local store

<em>Store file:</em> %s

<em>Possible causes:</em>
  - Disk is full
  - Another process holds the database lock`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to save locations: %w", err),
	}
}

// LoadError creates an error for a failed store read.
func LoadError(path string, err error) error {
	msg := `Cannot load locations from local store

<em>Store file:</em> %s

<em>How to fix:</em>
  1. Re-create the store: <em>ednamap ingest --save</em>`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load locations: %w", err),
	}
}
