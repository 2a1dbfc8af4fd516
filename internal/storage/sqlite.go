// Package storage persists rebuild runs in SQLite so pruned networks can
// be queried after the batch job exits.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			edges_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			fraction REAL,
			threshold REAL NOT NULL,
			total INTEGER NOT NULL,
			retained INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			reinserted INTEGER NOT NULL,
			removed_fraction REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS weighted_edges (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			citing_id TEXT NOT NULL,
			cited_id TEXT NOT NULL,
			weight REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_weighted_edges_run_cited ON weighted_edges(run_id, cited_id);

		CREATE TABLE IF NOT EXISTS in_degrees (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			paper_id TEXT NOT NULL,
			old_degree INTEGER NOT NULL,
			new_degree INTEGER NOT NULL,
			max_weight REAL NOT NULL,
			PRIMARY KEY (run_id, paper_id)
		);
	`

	_, err := db.Exec(schema)
	return err
}
