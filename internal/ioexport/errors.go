package ioexport

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// SchemaError creates an error for a failed schema migration.
func SchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database privileges
  - Leftover tables from an incompatible version

<em>How to fix:</em>
  1. Check that the database user can create tables
  2. Re-run with <em>--force</em> to drop existing tables`

	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// CopyError creates an error for a failed bulk insert.
func CopyError(table string, err error) error {
	msg := `Bulk insert failed

<em>Table:</em> %s

<em>Possible causes:</em>
  - Connection lost during COPY
  - Schema out of date

<em>How to fix:</em>
  1. Check database connectivity
  2. Re-run the export`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.ExportCopyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to copy into %s: %w", table, err),
	}
}
