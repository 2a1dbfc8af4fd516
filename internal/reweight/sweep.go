package reweight

import (
	"fmt"

	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/metadata"
	"github.com/matsen/citeweight/internal/weight"
)

// DefaultFractions are the decay fractions of the reference normalization
// tried by a sweep.
var DefaultFractions = []float64{0.40, 0.41, 0.43, 0.45, 0.47, 0.49, 0.50}

// DefaultFinalFraction is the fraction used for the final rebuild.
const DefaultFinalFraction = 0.43

// SweepPoint is the outcome of pruning the network at one threshold.
type SweepPoint struct {
	Fraction    float64 `json:"fraction"`
	Threshold   float64 `json:"threshold"`
	MaxInDegree int     `json:"max_in_degree"`
	Retained    int     `json:"retained"`
	Removed     int     `json:"removed"`
	Skipped     int     `json:"skipped"`
}

// Reference returns the normalization factor of a median-volume year. It
// is a single global value, not tied to any edge's citing year.
func Reference(h metadata.YearHistogram) float64 {
	return weight.ReferenceNormalization(h.Median())
}

// Threshold converts a decay fraction into an absolute weight threshold.
func Threshold(h metadata.YearHistogram, fraction float64) float64 {
	return Reference(h) * fraction
}

// Sweep prunes the edge list at reference×fraction for every fraction and
// records the resulting maximum in-degree. Each threshold re-reads the
// whole edge file and re-scores every edge, so the cost is
// O(fractions × edges); pass a weight.Cached scorer to trade memory for
// the repeated scoring. Sweep does not pick a threshold.
func Sweep(edgesPath string, scorer weight.Scorer, reference float64, fractions []float64, opts Options) ([]SweepPoint, error) {
	log := opts.logger()
	points := make([]SweepPoint, 0, len(fractions))

	for _, fraction := range fractions {
		pt := SweepPoint{Fraction: fraction, Threshold: reference * fraction}
		tally := make(DegreeDistribution)

		_, err := citation.ForEach(edgesPath, func(lineNum int, e citation.Edge) error {
			w, skipped, err := opts.score(scorer, lineNum, e)
			if err != nil {
				return err
			}
			switch {
			case skipped:
				pt.Skipped++
			case w < pt.Threshold:
				pt.Removed++
			default:
				pt.Retained++
				tally.Add(e.Cited, w)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("sweeping fraction %.2f: %w", fraction, err)
		}

		pt.MaxInDegree = tally.MaxInDegree()
		log.Info().
			Float64("fraction", fraction).
			Float64("threshold", pt.Threshold).
			Int("max_in_degree", pt.MaxInDegree).
			Int("removed", pt.Removed).
			Msg("Threshold evaluated")
		points = append(points, pt)
	}

	if n := len(points); n > 0 && points[n-1].Skipped > 0 {
		log.Warn().Int("skipped", points[n-1].Skipped).Msg("Edges without publication year were skipped")
	}
	return points, nil
}
