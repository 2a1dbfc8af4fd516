package storage

import (
	"fmt"

	"github.com/matsen/citeweight/internal/citation"
)

// Hub is a paper ranked by its in-degree in a stored run.
type Hub struct {
	PaperID   string  `json:"paper_id"`
	OldDegree int     `json:"old_degree"`
	NewDegree int     `json:"new_degree"`
	MaxWeight float64 `json:"max_weight"`
}

// TopHubs returns the papers with the largest original in-degree in a run,
// alongside their in-degree after pruning.
func (d *DB) TopHubs(runID string, limit int) ([]Hub, error) {
	rows, err := d.db.Query(`
		SELECT paper_id, old_degree, new_degree, max_weight
		FROM in_degrees
		WHERE run_id = ?
		ORDER BY old_degree DESC, paper_id
		LIMIT ?
	`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying hubs: %w", err)
	}
	defer rows.Close()

	var hubs []Hub
	for rows.Next() {
		var h Hub
		if err := rows.Scan(&h.PaperID, &h.OldDegree, &h.NewDegree, &h.MaxWeight); err != nil {
			return nil, fmt.Errorf("scanning hub: %w", err)
		}
		hubs = append(hubs, h)
	}
	return hubs, rows.Err()
}

// GetEdgesByCited returns the retained edges pointing at a paper in a run.
func (d *DB) GetEdgesByCited(runID, citedID string) ([]citation.Edge, error) {
	rows, err := d.db.Query(`
		SELECT citing_id, cited_id, weight
		FROM weighted_edges
		WHERE run_id = ? AND cited_id = ?
		ORDER BY weight DESC, citing_id
	`, runID, citedID)
	if err != nil {
		return nil, fmt.Errorf("querying edges by cited: %w", err)
	}
	defer rows.Close()

	var edges []citation.Edge
	for rows.Next() {
		var e citation.Edge
		if err := rows.Scan(&e.Citing, &e.Cited, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// CountEdges returns the number of retained edges stored for a run.
func (d *DB) CountEdges(runID string) (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM weighted_edges WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting edges: %w", err)
	}
	return count, nil
}
