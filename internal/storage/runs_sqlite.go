package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/reweight"
)

// ErrRunNotFound is returned when a run ID is not in the database.
var ErrRunNotFound = errors.New("run not found")

// Run describes one stored rebuild.
type Run struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"created_at"`
	EdgesPath  string  `json:"edges_path"`
	OutputPath string  `json:"output_path"`
	Fraction   float64 `json:"fraction,omitempty"`
	reweight.Stats
}

// SaveRun stores the statistics, retained edges and per-paper in-degrees of
// a rebuild in a single transaction and returns the stored run.
func (d *DB) SaveRun(run Run, res *reweight.Result, edges []citation.Edge) (*Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt == "" {
		run.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	run.Stats = res.Stats

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (
			id, created_at, edges_path, output_path, fraction, threshold,
			total, retained, removed, skipped, reinserted, removed_fraction
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CreatedAt, run.EdgesPath, run.OutputPath, run.Fraction, run.Threshold,
		run.Total, run.Retained, run.Removed, run.Skipped, run.Reinserted, run.RemovedFraction)
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}

	edgeStmt, err := tx.Prepare(`
		INSERT INTO weighted_edges (run_id, citing_id, cited_id, weight)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range edges {
		if _, err := edgeStmt.Exec(run.ID, e.Citing, e.Cited, e.Weight); err != nil {
			return nil, fmt.Errorf("inserting edge %s ==> %s: %w", e.Citing, e.Cited, err)
		}
	}

	degreeStmt, err := tx.Prepare(`
		INSERT INTO in_degrees (run_id, paper_id, old_degree, new_degree, max_weight)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing degree insert: %w", err)
	}
	defer degreeStmt.Close()

	for id, ws := range res.Old {
		_, err := degreeStmt.Exec(run.ID, id, len(ws), res.New.InDegree(id), floats.Max(ws))
		if err != nil {
			return nil, fmt.Errorf("inserting in-degree for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing run: %w", err)
	}
	return &run, nil
}

const selectRunFields = `id, created_at, edges_path, output_path, fraction, threshold,
	total, retained, removed, skipped, reinserted, removed_fraction`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	var fraction sql.NullFloat64
	err := s.Scan(&r.ID, &r.CreatedAt, &r.EdgesPath, &r.OutputPath, &fraction, &r.Threshold,
		&r.Total, &r.Retained, &r.Removed, &r.Skipped, &r.Reinserted, &r.RemovedFraction)
	if err != nil {
		return nil, err
	}
	r.Fraction = fraction.Float64
	return &r, nil
}

// GetRun returns the run with the given ID.
func (d *DB) GetRun(id string) (*Run, error) {
	row := d.db.QueryRow("SELECT "+selectRunFields+" FROM runs WHERE id = ?", id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}
	return r, nil
}

// ListRuns returns all stored runs, newest first.
func (d *DB) ListRuns() ([]Run, error) {
	rows, err := d.db.Query("SELECT " + selectRunFields + " FROM runs ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recently stored run.
func (d *DB) LatestRun() (*Run, error) {
	runs, err := d.ListRuns()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[0], nil
}
