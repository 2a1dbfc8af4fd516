package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/matsen/citeweight/internal/citation"
)

func init() {
	rootCmd.AddCommand(degreesCmd)
}

var degreesCmd = &cobra.Command{
	Use:   "degrees",
	Short: "Summarize in- and out-degrees of the raw citation network",
	Long: `Report the minimum, maximum and mean number of citations received (in-degree)
and references made (out-degree) over the papers that appear in the edge list.`,
	Args: cobra.NoArgs,
	RunE: runDegrees,
}

// DegreeSummary describes one degree sequence.
type DegreeSummary struct {
	Papers int     `json:"papers"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
}

// DegreesResponse is the response for the degrees command.
type DegreesResponse struct {
	Edges int           `json:"edges"`
	In    DegreeSummary `json:"in"`
	Out   DegreeSummary `json:"out"`
}

func runDegrees(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	in, out, err := citation.DegreeCounts(cfg.Inputs.Edges)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	edges := 0
	for _, d := range out {
		edges += d
	}
	resp := DegreesResponse{Edges: edges, In: summarize(in), Out: summarize(out)}

	if humanOutput {
		outputHuman("%d citations\n", resp.Edges)
		outputHuman("Max and min value of in degree citation: %d %d (mean %.2f over %d papers)\n", resp.In.Max, resp.In.Min, resp.In.Mean, resp.In.Papers)
		outputHuman("Max and min value of out degree citation: %d %d (mean %.2f over %d papers)\n", resp.Out.Max, resp.Out.Min, resp.Out.Mean, resp.Out.Papers)
		return nil
	}
	return outputJSON(resp)
}

func summarize(counts map[string]int) DegreeSummary {
	if len(counts) == 0 {
		return DegreeSummary{}
	}
	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		values = append(values, float64(c))
	}
	return DegreeSummary{
		Papers: len(values),
		Min:    int(floats.Min(values)),
		Max:    int(floats.Max(values)),
		Mean:   stat.Mean(values, nil),
	}
}
