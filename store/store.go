// Package store keeps saved patch set documents in SQLite, one per bundle,
// so a host can re-apply them at startup.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"

	"github.com/chazu/patchwork/patch"
	"github.com/chazu/patchwork/store/migrations"
)

// ErrNotFound indicates no patch set is saved for the bundle.
var ErrNotFound = errors.New("patch set not found")

// PatchSet is one saved document.
type PatchSet struct {
	Bundle      string
	Document    string
	Fingerprint string
	UpdatedAt   time.Time
}

// Store persists patch sets in SQLite.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	log  commonlog.Logger
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := applyMigrations(context.Background(), db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: cleanPath, log: commonlog.GetLogger("patchwork.store")}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores doc as bundle's patch set. It reports false without writing
// when the saved document already has the same fingerprint.
func (s *Store) Save(ctx context.Context, bundle, doc string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	bundle = strings.TrimSpace(bundle)
	if bundle == "" {
		return false, fmt.Errorf("bundle is required")
	}
	fp, err := patch.Fingerprint(doc)
	if err != nil {
		return false, fmt.Errorf("fingerprint %s: %w", bundle, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current string
	err = s.db.QueryRowContext(ctx, `SELECT fingerprint FROM patch_sets WHERE bundle = ?`, bundle).Scan(&current)
	switch {
	case err == nil && current == fp:
		return false, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("read fingerprint %s: %w", bundle, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO patch_sets (bundle, document, fingerprint, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(bundle) DO UPDATE SET
		   document = excluded.document,
		   fingerprint = excluded.fingerprint,
		   updated_at = excluded.updated_at`,
		bundle, doc, fp, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return false, fmt.Errorf("save patch set %s: %w", bundle, err)
	}
	s.log.Debugf("saved patch set for %s (%s)", bundle, fp[:12])
	return true, nil
}

// Load returns bundle's saved patch set.
func (s *Store) Load(ctx context.Context, bundle string) (PatchSet, error) {
	if err := ctx.Err(); err != nil {
		return PatchSet{}, err
	}
	var (
		ps      PatchSet
		updated int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT bundle, document, fingerprint, updated_at FROM patch_sets WHERE bundle = ?`, bundle,
	).Scan(&ps.Bundle, &ps.Document, &ps.Fingerprint, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return PatchSet{}, ErrNotFound
	}
	if err != nil {
		return PatchSet{}, fmt.Errorf("load patch set %s: %w", bundle, err)
	}
	ps.UpdatedAt = time.UnixMilli(updated).UTC()
	return ps, nil
}

// List returns every saved patch set ordered by bundle.
func (s *Store) List(ctx context.Context) ([]PatchSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bundle, document, fingerprint, updated_at FROM patch_sets ORDER BY bundle`)
	if err != nil {
		return nil, fmt.Errorf("list patch sets: %w", err)
	}
	defer rows.Close()

	var out []PatchSet
	for rows.Next() {
		var (
			ps      PatchSet
			updated int64
		)
		if err := rows.Scan(&ps.Bundle, &ps.Document, &ps.Fingerprint, &updated); err != nil {
			return nil, fmt.Errorf("scan patch set: %w", err)
		}
		ps.UpdatedAt = time.UnixMilli(updated).UTC()
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list patch sets: %w", err)
	}
	return out, nil
}

// Delete removes bundle's patch set. It reports whether one existed.
func (s *Store) Delete(ctx context.Context, bundle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM patch_sets WHERE bundle = ?`, bundle)
	if err != nil {
		return false, fmt.Errorf("delete patch set %s: %w", bundle, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete patch set %s: %w", bundle, err)
	}
	return n > 0, nil
}
