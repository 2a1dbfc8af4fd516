package reweight

import (
	"fmt"

	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/weight"
)

// Stats summarizes a rebuild. Retained + Removed == Total; edges skipped
// for missing metadata are counted separately and are not part of Total.
type Stats struct {
	Threshold       float64 `json:"threshold"`
	Total           int     `json:"total"`
	Retained        int     `json:"retained"`
	Removed         int     `json:"removed"`
	Skipped         int     `json:"skipped"`
	Reinserted      int     `json:"reinserted"`
	RemovedFraction float64 `json:"removed_fraction"`
}

// Result is the outcome of Rebuild.
type Result struct {
	Stats
	Old DegreeDistribution `json:"-"` // every scored edge
	New DegreeDistribution `json:"-"` // retained edges, reconciled
}

// Rebuild scores every edge once, writes the edges with weight >= threshold
// to outPath as "<citing> ==> <cited> <weight>" and returns the in-degree
// distributions before and after pruning. Papers whose incoming edges were
// all pruned keep one entry in New holding their largest original weight.
func Rebuild(edgesPath, outPath string, scorer weight.Scorer, threshold float64, opts Options) (*Result, error) {
	log := opts.logger()

	w, err := citation.Create(outPath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	res := &Result{
		Stats: Stats{Threshold: threshold},
		Old:   make(DegreeDistribution),
		New:   make(DegreeDistribution),
	}

	_, err = citation.ForEach(edgesPath, func(lineNum int, e citation.Edge) error {
		wt, skipped, err := opts.score(scorer, lineNum, e)
		if err != nil {
			return err
		}
		if skipped {
			res.Skipped++
			return nil
		}

		res.Total++
		res.Old.Add(e.Cited, wt)
		if wt < threshold {
			res.Removed++
			return nil
		}
		res.Retained++
		res.New.Add(e.Cited, wt)
		e.Weight = wt
		return w.Write(e)
	})
	if err != nil {
		return nil, fmt.Errorf("rebuilding network: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	res.Reinserted = res.New.Reconcile(res.Old)
	if res.Total > 0 {
		res.RemovedFraction = float64(res.Removed) / float64(res.Total)
	}

	log.Info().
		Int("total", res.Total).
		Int("retained", res.Retained).
		Int("removed", res.Removed).
		Int("reinserted", res.Reinserted).
		Float64("removed_fraction", res.RemovedFraction).
		Msg("Network rebuilt")
	if res.Skipped > 0 {
		log.Warn().Int("skipped", res.Skipped).Msg("Edges without publication year were skipped")
	}
	return res, nil
}
