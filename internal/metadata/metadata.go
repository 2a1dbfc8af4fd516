// Package metadata loads the paper, authorship and community lookup tables
// that the edge weight model reads from.
package metadata

import (
	"sort"
)

// YearMap maps a paper ID to its publication year.
// Papers with an unknown year are absent.
type YearMap map[string]int

// Year returns the publication year of a paper and whether it is known.
func (m YearMap) Year(paperID string) (int, bool) {
	y, ok := m[paperID]
	return y, ok
}

// AuthorshipMap maps a paper ID to its authors in file order.
type AuthorshipMap map[string][]string

// CommunityMap maps an author ID to the community label assigned by a
// prior community detection pass.
type CommunityMap map[string]string

// YearCount is one bucket of a publication year distribution.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearHistogram counts how many papers were published in each year.
type YearHistogram map[int]int

// NewYearHistogram counts the papers of each year in a YearMap.
func NewYearHistogram(years YearMap) YearHistogram {
	h := make(YearHistogram)
	for _, y := range years {
		h[y]++
	}
	return h
}

// Count returns the number of papers published in year.
func (h YearHistogram) Count(year int) int {
	return h[year]
}

// Median returns the median of the per-year paper counts. For an even
// number of years it is the mean of the two middle counts. An empty
// histogram has median 0.
func (h YearHistogram) Median() float64 {
	if len(h) == 0 {
		return 0
	}
	counts := make([]int, 0, len(h))
	for _, c := range h {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	mid := len(counts) / 2
	if len(counts)%2 == 1 {
		return float64(counts[mid])
	}
	return float64(counts[mid-1]+counts[mid]) / 2
}

// Sorted returns the histogram buckets in ascending year order.
func (h YearHistogram) Sorted() []YearCount {
	out := make([]YearCount, 0, len(h))
	for y, c := range h {
		out = append(out, YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
