// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists conversion outcomes in a local SQLite
// database so repeated runs can skip unchanged documents.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/xiongbear2005/docx2md/pkg/types"
)

// Store manages the conversion catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating the
// schema and any missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			output_path TEXT NOT NULL,
			mod_time TEXT NOT NULL,
			converted_at TEXT NOT NULL,
			status TEXT NOT NULL,
			inline_count INTEGER NOT NULL DEFAULT 0,
			display_count INTEGER NOT NULL DEFAULT 0,
			placeholder_count INTEGER NOT NULL DEFAULT 0,
			image_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts the outcome of one conversion, keyed by source path.
func (s *Store) Record(rec types.DocumentRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO documents (path, output_path, mod_time, converted_at, status,
			inline_count, display_count, placeholder_count, image_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			output_path=excluded.output_path, mod_time=excluded.mod_time,
			converted_at=excluded.converted_at, status=excluded.status,
			inline_count=excluded.inline_count, display_count=excluded.display_count,
			placeholder_count=excluded.placeholder_count, image_count=excluded.image_count`,
		rec.Path, rec.OutputPath,
		rec.ModTime.UTC().Format(time.RFC3339Nano),
		rec.ConvertedAt.UTC().Format(time.RFC3339),
		string(rec.Status),
		rec.Stats.InlineCount, rec.Stats.DisplayCount,
		rec.Stats.PlaceholderCount, rec.Stats.ImageCount,
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", rec.Path, err)
	}
	return nil
}

// NeedsConversion reports whether the document at path changed since it
// was last recorded. Unknown documents and catalog read errors both
// answer true so the converter never skips work it cannot verify.
func (s *Store) NeedsConversion(path string, modTime time.Time) bool {
	var stored string
	err := s.db.QueryRow(
		`SELECT mod_time FROM documents WHERE path = ?`, path,
	).Scan(&stored)
	if err != nil {
		return true
	}
	return stored != modTime.UTC().Format(time.RFC3339Nano)
}

// List returns every record in the catalog, ordered by source path.
func (s *Store) List() ([]types.DocumentRecord, error) {
	rows, err := s.db.Query(
		`SELECT path, output_path, mod_time, converted_at, status,
			inline_count, display_count, placeholder_count, image_count
		 FROM documents ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var recs []types.DocumentRecord
	for rows.Next() {
		var rec types.DocumentRecord
		var modTime, convertedAt, status string
		if err := rows.Scan(&rec.Path, &rec.OutputPath, &modTime, &convertedAt, &status,
			&rec.Stats.InlineCount, &rec.Stats.DisplayCount,
			&rec.Stats.PlaceholderCount, &rec.Stats.ImageCount); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		if rec.ModTime, err = time.Parse(time.RFC3339Nano, modTime); err != nil {
			return nil, fmt.Errorf("parsing mod_time for %s: %w", rec.Path, err)
		}
		if rec.ConvertedAt, err = time.Parse(time.RFC3339, convertedAt); err != nil {
			return nil, fmt.Errorf("parsing converted_at for %s: %w", rec.Path, err)
		}
		rec.Status = types.ConversionStatus(status)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return recs, nil
}

// Summary aggregates the catalog for reporting.
type Summary struct {
	Documents        int `json:"documents" yaml:"documents"`
	Converted        int `json:"converted" yaml:"converted"`
	Partial          int `json:"partial" yaml:"partial"`
	Failed           int `json:"failed" yaml:"failed"`
	InlineTotal      int `json:"inline_total" yaml:"inline_total"`
	DisplayTotal     int `json:"display_total" yaml:"display_total"`
	PlaceholderTotal int `json:"placeholder_total" yaml:"placeholder_total"`
	ImageTotal       int `json:"image_total" yaml:"image_total"`
}

// Stats aggregates every record in the catalog.
func (s *Store) Stats() (Summary, error) {
	var sum Summary

	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM documents GROUP BY status`)
	if err != nil {
		return Summary{}, fmt.Errorf("querying status counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Summary{}, fmt.Errorf("scanning status count: %w", err)
		}
		switch types.ConversionStatus(status) {
		case types.ConversionDone:
			sum.Converted = n
		case types.ConversionPartial:
			sum.Partial = n
		case types.ConversionFailed:
			sum.Failed = n
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("iterating status counts: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*),
			COALESCE(SUM(inline_count), 0), COALESCE(SUM(display_count), 0),
			COALESCE(SUM(placeholder_count), 0), COALESCE(SUM(image_count), 0)
		 FROM documents`,
	).Scan(&sum.Documents, &sum.InlineTotal, &sum.DisplayTotal,
		&sum.PlaceholderTotal, &sum.ImageTotal)
	if err != nil {
		return Summary{}, fmt.Errorf("querying totals: %w", err)
	}
	return sum, nil
}
