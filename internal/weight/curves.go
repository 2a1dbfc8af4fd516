package weight

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// LinearDecay falls from 1 at ref by slope per year, floored at 0.
func LinearDecay(year, ref, slope float64) float64 {
	return math.Max(0, 1-slope*(ref-year))
}

// ExponentialDecay falls off as exp(-lambda·|year-ref|).
func ExponentialDecay(year, ref, lambda float64) float64 {
	return math.Exp(-lambda * math.Abs(year-ref))
}

// CurveParams configures a comparison of decay curves.
type CurveParams struct {
	Start   int     `json:"start"`
	End     int     `json:"end"`
	T0      float64 `json:"t0"`     // sigmoid center
	Lambda  float64 `json:"lambda"` // sigmoid steepness and exponential rate
	RefYear float64 `json:"ref_year"`
	Slope   float64 `json:"slope"`
}

// DefaultCurveParams mirrors the range used to pick the sigmoid parameters.
func DefaultCurveParams() CurveParams {
	return CurveParams{Start: 1965, End: 2015, T0: DefaultT0, Lambda: DefaultK, RefYear: 2015, Slope: 0.02}
}

// CurvePoint holds the three candidate decay weights for one year.
type CurvePoint struct {
	Year        int     `json:"year"`
	Sigmoid     float64 `json:"sigmoid"`
	Linear      float64 `json:"linear"`
	Exponential float64 `json:"exponential"`
}

// CurveComparison is the result of CompareCurves.
type CurveComparison struct {
	Params      CurveParams  `json:"params"`
	Points      []CurvePoint `json:"points"`
	MeanSigmoid float64      `json:"mean_sigmoid"`
}

// CompareCurves evaluates the sigmoid, linear and exponential decays for
// every year in [Start, End].
func CompareCurves(p CurveParams) CurveComparison {
	out := CurveComparison{Params: p}
	if p.End < p.Start {
		return out
	}
	sigmoids := make([]float64, 0, p.End-p.Start+1)
	for y := p.Start; y <= p.End; y++ {
		fy := float64(y)
		pt := CurvePoint{
			Year:        y,
			Sigmoid:     TimeDecay(fy, p.Lambda, p.T0),
			Linear:      LinearDecay(fy, p.RefYear, p.Slope),
			Exponential: ExponentialDecay(fy, p.RefYear, p.Lambda),
		}
		sigmoids = append(sigmoids, pt.Sigmoid)
		out.Points = append(out.Points, pt)
	}
	out.MeanSigmoid = stat.Mean(sigmoids, nil)
	return out
}
