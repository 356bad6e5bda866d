// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citestore persists citation observations in a SQLite database
// so repeated lookups for the same papers do not spend provider quota.
// Only successful observations are stored; failures stay ephemeral.
package citestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Store is a SQLite-backed cache of citation observations, keyed by
// (source, arXiv ID). Safe for concurrent use; database/sql serializes
// access to the single connection SQLite hands out.
type Store struct {
	db *sql.DB

	// maxAge bounds how old an observation may be before Get treats it
	// as a miss. Zero means observations never expire.
	maxAge time.Duration
}

// Open opens or creates the cache database at path, creating parent
// directories as needed. maxAge of zero disables expiry.
func Open(path string, maxAge time.Duration) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db, maxAge: maxAge}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `CREATE TABLE IF NOT EXISTS observations (
		source TEXT NOT NULL,
		arxiv_id TEXT NOT NULL,
		doi TEXT,
		count INTEGER NOT NULL,
		fetched_at TEXT NOT NULL,
		PRIMARY KEY (source, arxiv_id)
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Get returns the cached observation for (source, arxivID). The second
// return value is false when there is no entry or the entry is older
// than the store's max age.
func (s *Store) Get(source, arxivID string) (types.CitationObservation, bool, error) {
	row := s.db.QueryRow(
		`SELECT doi, count, fetched_at FROM observations WHERE source = ? AND arxiv_id = ?`,
		source, arxivID,
	)

	var doi sql.NullString
	var count int
	var fetchedAt string
	if err := row.Scan(&doi, &count, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return types.CitationObservation{}, false, nil
		}
		return types.CitationObservation{}, false, fmt.Errorf("reading cache row: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return types.CitationObservation{}, false, fmt.Errorf("parsing cached timestamp: %w", err)
	}
	if s.maxAge > 0 && time.Since(t) > s.maxAge {
		return types.CitationObservation{}, false, nil
	}

	return types.CitationObservation{
		Source:    source,
		ArxivID:   arxivID,
		DOI:       doi.String,
		Count:     count,
		FetchedAt: t,
		Status:    types.StatusOK,
	}, true, nil
}

// Put stores a successful observation, replacing any previous entry for
// the same (source, arXiv ID). Failure observations are rejected.
func (s *Store) Put(obs types.CitationObservation) error {
	if !obs.Status.Success() {
		return fmt.Errorf("refusing to cache %s observation for %s", obs.Status, obs.ArxivID)
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO observations (source, arxiv_id, doi, count, fetched_at) VALUES (?, ?, ?, ?, ?)`,
		obs.Source, obs.ArxivID, obs.DOI, obs.Count, obs.FetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("writing cache row: %w", err)
	}
	return nil
}
