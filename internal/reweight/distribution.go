package reweight

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DegreeDistribution maps a cited paper ID to the weights of its incoming
// edges. The in-degree of a paper is the number of recorded weights.
type DegreeDistribution map[string][]float64

// Add records an incoming edge of weight w for paperID.
func (d DegreeDistribution) Add(paperID string, w float64) {
	d[paperID] = append(d[paperID], w)
}

// InDegree returns the number of incoming edges recorded for paperID.
func (d DegreeDistribution) InDegree(paperID string) int {
	return len(d[paperID])
}

// InDegrees returns the in-degree of every paper, ordered by paper ID.
func (d DegreeDistribution) InDegrees() []int {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	degrees := make([]int, len(ids))
	for i, id := range ids {
		degrees[i] = len(d[id])
	}
	return degrees
}

// MaxInDegree returns the largest in-degree, or 0 for an empty distribution.
func (d DegreeDistribution) MaxInDegree() int {
	max := 0
	for _, ws := range d {
		if len(ws) > max {
			max = len(ws)
		}
	}
	return max
}

// Reconcile gives every paper of old that has no entry in d a single
// weight equal to the largest of its original weights, so no cited paper
// vanishes from the pruned distribution. It returns how many papers were
// reinserted.
func (d DegreeDistribution) Reconcile(old DegreeDistribution) int {
	added := 0
	for id, ws := range old {
		if _, ok := d[id]; ok || len(ws) == 0 {
			continue
		}
		d[id] = []float64{floats.Max(ws)}
		added++
	}
	return added
}
