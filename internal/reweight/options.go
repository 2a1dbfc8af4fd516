// Package reweight scores every edge of a citation network, searches for a
// hub-suppressing weight threshold and rebuilds the pruned network.
package reweight

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/weight"
)

// MissingPolicy decides what happens to an edge whose endpoint has no
// publication year.
type MissingPolicy string

const (
	// PolicySkip counts the edge as skipped and continues.
	PolicySkip MissingPolicy = "skip"
	// PolicyAbort fails the run with the missing-metadata error.
	PolicyAbort MissingPolicy = "abort"
)

// ValidPolicies lists the accepted missing-year policies.
var ValidPolicies = []MissingPolicy{PolicySkip, PolicyAbort}

// ParsePolicy converts a configuration string to a MissingPolicy.
// The empty string selects PolicySkip.
func ParsePolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(s) {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyAbort:
		return PolicyAbort, nil
	}
	return "", fmt.Errorf("invalid missing-year policy: %s (valid: %v)", s, ValidPolicies)
}

// Options configures a sweep or rebuild.
type Options struct {
	Policy MissingPolicy
	Logger *zerolog.Logger
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// score weights one edge. skipped is true when the edge lacks metadata and
// the policy allows continuing.
func (o Options) score(s weight.Scorer, lineNum int, e citation.Edge) (w float64, skipped bool, err error) {
	w, err = s.Weight(e.Citing, e.Cited)
	if err == nil {
		return w, false, nil
	}
	if weight.IsMissingMetadata(err) && o.Policy != PolicyAbort {
		o.logger().Debug().Int("line", lineNum).Err(err).Msg("skipping edge")
		return 0, true, nil
	}
	return 0, false, fmt.Errorf("line %d: %w", lineNum, err)
}
