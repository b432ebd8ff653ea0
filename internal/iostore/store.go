// Package iostore persists ingested LocationRecords in a local SQLite
// file, so the serve and export commands can run without re-parsing the
// survey files.
package iostore

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/gnfmt"

	_ "modernc.org/sqlite"
)

// Records are stored as JSON blobs, one row per location. The position
// column preserves ingestion order, which is also the marker layout
// order.
const createTable = `CREATE TABLE IF NOT EXISTS locations (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  payload BLOB NOT NULL
)`

type iostore struct {
	path string
	db   *sql.DB
	enc  gnfmt.Encoder
}

// New opens (creating if needed) the SQLite store at path.
func New(path string) (ednamap.Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}

	return &iostore{path: path, db: db, enc: gnfmt.GNjson{}}, nil
}

// Save replaces the stored record set in one transaction.
func (s *iostore) Save(
	ctx context.Context,
	locs []record.LocationRecord,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(s.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM locations"); err != nil {
		return SaveError(s.path, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO locations (id, position, payload) VALUES (?, ?, ?)")
	if err != nil {
		return SaveError(s.path, err)
	}
	defer stmt.Close()

	for i, loc := range locs {
		payload, err := s.enc.Encode(loc)
		if err != nil {
			return SaveError(s.path, err)
		}
		if _, err := stmt.ExecContext(ctx, loc.ID, i, payload); err != nil {
			return SaveError(s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SaveError(s.path, err)
	}

	slog.Info("saved locations", "path", s.path, "locations", len(locs))
	return nil
}

// Load returns the stored record set in ingestion order.
func (s *iostore) Load(
	ctx context.Context,
) ([]record.LocationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM locations ORDER BY position")
	if err != nil {
		return nil, LoadError(s.path, err)
	}
	defer rows.Close()

	var res []record.LocationRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, LoadError(s.path, err)
		}
		var loc record.LocationRecord
		if err := s.enc.Decode(payload, &loc); err != nil {
			return nil, LoadError(s.path, err)
		}
		res = append(res, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, LoadError(s.path, err)
	}
	return res, nil
}

func (s *iostore) Close() error {
	return s.db.Close()
}
