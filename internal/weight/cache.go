package weight

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type edgeKey struct {
	citing, cited string
}

type cachedResult struct {
	weight float64
	err    error
}

// Cached memoizes a Scorer in a bounded LRU. Weights are a pure function of
// fixed lookup tables, so a cache hit returns exactly what a fresh
// computation would, including missing-metadata errors.
type Cached struct {
	inner  Scorer
	cache  *lru.Cache[edgeKey, cachedResult]
	hits   int
	misses int
}

// NewCached wraps inner with an LRU holding up to size edges.
func NewCached(inner Scorer, size int) (*Cached, error) {
	c, err := lru.New[edgeKey, cachedResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating weight cache: %w", err)
	}
	return &Cached{inner: inner, cache: c}, nil
}

// Weight returns the memoized weight of citing ==> cited.
func (c *Cached) Weight(citing, cited string) (float64, error) {
	k := edgeKey{citing, cited}
	if r, ok := c.cache.Get(k); ok {
		c.hits++
		return r.weight, r.err
	}
	c.misses++
	w, err := c.inner.Weight(citing, cited)
	c.cache.Add(k, cachedResult{weight: w, err: err})
	return w, err
}

// Stats returns the number of cache hits and misses so far.
func (c *Cached) Stats() (hits, misses int) {
	return c.hits, c.misses
}
