// Package store persists analysis runs to a DuckDB history database and
// writes result objects to JSON files on request.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/bryancraven/rock-photo/internal/result"
)

// Run kinds.
const (
	KindAnalysis   = "analysis"
	KindComparison = "comparison"
)

// Run is one recorded model invocation and its result document.
type Run struct {
	ID           int64
	CreatedAt    string
	ImagePath    string
	Variant      string
	Kind         string // KindAnalysis or KindComparison
	LocationMode string
	Model        string
	Result       result.Document
}

// Store manages run history via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "rock-photo.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	if _, err := s.DB.Exec("CREATE SEQUENCE IF NOT EXISTS runs_seq"); err != nil {
		return fmt.Errorf("creating sequence: %w", err)
	}

	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY DEFAULT nextval('runs_seq'),
		created_at TEXT NOT NULL,
		image_path TEXT NOT NULL,
		variant TEXT NOT NULL,
		kind TEXT NOT NULL,
		location_mode TEXT NOT NULL,
		model TEXT NOT NULL,
		result TEXT NOT NULL
	)`
	if _, err := s.DB.Exec(stmt); err != nil {
		return fmt.Errorf("creating runs table: %w", err)
	}

	return nil
}

// WriteRun records a completed run and returns its assigned id.
func (s *Store) WriteRun(r *Run) (int64, error) {
	doc, err := json.Marshal(r.Result)
	if err != nil {
		return 0, fmt.Errorf("serializing result: %w", err)
	}

	var id int64
	err = s.DB.QueryRow(`INSERT INTO runs (created_at, image_path, variant, kind, location_mode, model, result)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		r.CreatedAt, r.ImagePath, r.Variant, r.Kind, r.LocationMode, r.Model, string(doc)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// ReadRun loads one run by id.
func (s *Store) ReadRun(id int64) (*Run, error) {
	r := &Run{ID: id}
	var doc string
	err := s.DB.QueryRow(`SELECT created_at, image_path, variant, kind, location_mode, model, result
		FROM runs WHERE id = ?`, id).
		Scan(&r.CreatedAt, &r.ImagePath, &r.Variant, &r.Kind, &r.LocationMode, &r.Model, &doc)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(doc), &r.Result); err != nil {
		return nil, fmt.Errorf("parsing stored result %d: %w", id, err)
	}
	return r, nil
}

// ListRuns returns the most recent runs, newest first. Result documents are
// not loaded; use ReadRun for the full record.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.DB.Query(`SELECT id, created_at, image_path, variant, kind, location_mode, model
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.ImagePath, &r.Variant, &r.Kind, &r.LocationMode, &r.Model); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunCount returns the total number of recorded runs.
func (s *Store) RunCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n
}

// CountByVariant returns run counts per analyzer variant.
func (s *Store) CountByVariant() map[string]int {
	m := make(map[string]int)
	rows, err := s.DB.Query("SELECT variant, COUNT(*) FROM runs GROUP BY variant ORDER BY variant")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var variant string
		var cnt int
		rows.Scan(&variant, &cnt)
		m[variant] = cnt
	}
	return m
}

// WriteResultFile persists one result object verbatim as pretty-printed
// 2-space-indented UTF-8 JSON.
func WriteResultFile(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
