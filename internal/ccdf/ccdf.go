// Package ccdf computes complementary cumulative distributions of degree
// sequences for before/after comparisons.
package ccdf

import "sort"

// Point is one step of a CCDF curve.
type Point struct {
	Degree int     `json:"degree"`
	Value  float64 `json:"ccdf"`
}

// Compute returns, for every distinct degree d in ascending order,
// 1 - (number of nodes with degree <= d) / (number of nodes).
// The last point is therefore always 0. An empty input yields nil.
func Compute(degrees []int) []Point {
	if len(degrees) == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, d := range degrees {
		counts[d]++
	}
	distinct := make([]int, 0, len(counts))
	for d := range counts {
		distinct = append(distinct, d)
	}
	sort.Ints(distinct)

	total := float64(len(degrees))
	points := make([]Point, len(distinct))
	cumulative := 0
	for i, d := range distinct {
		cumulative += counts[d]
		points[i] = Point{Degree: d, Value: 1 - float64(cumulative)/total}
	}
	return points
}

// Comparison holds the CCDF of a network before and after pruning.
type Comparison struct {
	Old []Point `json:"old"`
	New []Point `json:"new"`
}

// Compare computes both curves of a before/after pair.
func Compare(oldDegrees, newDegrees []int) Comparison {
	return Comparison{Old: Compute(oldDegrees), New: Compute(newDegrees)}
}
