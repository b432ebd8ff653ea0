package iodb

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for a failed PostgreSQL connection.
func ConnectionError(host string, port int, database string, err error) error {
	msg := `Cannot connect to PostgreSQL

<em>Connection:</em> %s:%d/%s

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running: <em>pg_isready -h %s -p %d</em>
  2. Review settings in <em>~/.config/ednamap/config.yaml</em>`

	vars := []any{host, port, database, host, port}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to connect to %s:%d/%s: %w", host, port, database, err),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected. Call Connect first.",
		Err:  fmt.Errorf("operator used before Connect"),
	}
}

// QueryError wraps a failed catalog query.
func QueryError(err error) error {
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  "Database query failed: %v",
		Vars: []any{err},
		Err:  fmt.Errorf("query failed: %w", err),
	}
}
