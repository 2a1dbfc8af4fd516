package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/reweight"
	"github.com/matsen/citeweight/internal/weight"
)

func init() {
	sweepCmd.Flags().String("fractions", "", "Comma-separated decay fractions (overrides search.fractions)")
	rootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Show maximum in-degree for each candidate threshold",
	Long: `Prune the citation network at a series of candidate thresholds and report
the largest in-degree left at each.

Thresholds are fractions of the normalization factor of a year with the
median publication volume. Every threshold re-reads and re-scores the whole
edge list; set search.cache_size to memoize edge weights across thresholds.
The sweep does not pick a threshold; pass the chosen fraction to rebuild.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

// SweepResponse is the response for the sweep command.
type SweepResponse struct {
	Median    float64               `json:"median_annual_count"`
	Reference float64               `json:"reference_normalization"`
	Points    []reweight.SweepPoint `json:"points"`
	CacheHits int                   `json:"cache_hits,omitempty"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	p := mustLoadPipeline()

	fractions := p.cfg.Search.Fractions
	if s, _ := cmd.Flags().GetString("fractions"); s != "" {
		parsed, err := parseFractions(s)
		if err != nil {
			exitWithError(ExitError, "invalid --fractions: %v", err)
		}
		fractions = parsed
	}

	points, err := reweight.Sweep(p.cfg.Inputs.Edges, p.scorer, p.reference(), fractions, p.options())
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	resp := SweepResponse{
		Median:    p.ctx.Histogram.Median(),
		Reference: p.reference(),
		Points:    points,
	}
	if cached, ok := p.scorer.(*weight.Cached); ok {
		resp.CacheHits, _ = cached.Stats()
	}

	if humanOutput {
		outputHuman("Median papers per year: %.1f (reference normalization %.6f)\n\n", resp.Median, resp.Reference)
		outputHuman("%8s  %10s  %13s  %9s  %9s\n", "fraction", "threshold", "max in-degree", "retained", "removed")
		for _, pt := range points {
			outputHuman("%8.2f  %10.6f  %13d  %9d  %9d\n", pt.Fraction, pt.Threshold, pt.MaxInDegree, pt.Retained, pt.Removed)
		}
		if n := len(points); n > 0 && points[n-1].Skipped > 0 {
			outputHuman("\n%d edges skipped for missing publication year\n", points[n-1].Skipped)
		}
		return nil
	}
	return outputJSON(resp)
}

// parseFractions parses a comma-separated list of fractions in (0, 1].
func parseFractions(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		if f <= 0 || f > 1 {
			return nil, strconv.ErrRange
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, strconv.ErrSyntax
	}
	return out, nil
}
