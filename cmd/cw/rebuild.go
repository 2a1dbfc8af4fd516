package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/ccdf"
	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/config"
	"github.com/matsen/citeweight/internal/reweight"
	"github.com/matsen/citeweight/internal/storage"
)

func init() {
	rebuildCmd.Flags().Float64("fraction", 0, "Decay fraction of the reference normalization (default: search.final_fraction)")
	rebuildCmd.Flags().Float64("threshold", 0, "Absolute weight threshold (overrides --fraction)")
	rebuildCmd.Flags().StringP("output", "o", "", "Weighted edge list to write (default: output.edges)")
	rebuildCmd.Flags().String("db", "", "SQLite database to store the run in (default: output.db)")
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Write the pruned weighted citation network",
	Long: `Score every citation once, keep those with weight at or above the threshold
and write them as "<citing> ==> <cited> <weight>".

Reports the fraction of edges removed and the CCDF of in-degrees before and
after pruning. A paper whose incoming edges were all pruned keeps a single
entry holding its largest original weight, so it stays in the comparison.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResponse is the response for the rebuild command.
type RebuildResponse struct {
	Output string          `json:"output"`
	RunID  string          `json:"run_id,omitempty"`
	Stats  reweight.Stats  `json:"stats"`
	CCDF   ccdf.Comparison `json:"ccdf"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	p := mustLoadPipeline()

	fraction := p.cfg.Search.FinalFraction
	if cmd.Flags().Changed("fraction") {
		fraction, _ = cmd.Flags().GetFloat64("fraction")
		if fraction <= 0 || fraction > 1 {
			exitWithError(ExitError, "--fraction must be in (0, 1], got %v", fraction)
		}
	}
	threshold := p.reference() * fraction
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetFloat64("threshold")
		fraction = 0
	}

	out := p.cfg.Output.Edges
	if s, _ := cmd.Flags().GetString("output"); s != "" {
		out = config.ExpandPath(s)
	}
	dbPath := p.cfg.Output.DB
	if s, _ := cmd.Flags().GetString("db"); s != "" {
		dbPath = config.ExpandPath(s)
	}

	res, err := reweight.Rebuild(p.cfg.Inputs.Edges, out, p.scorer, threshold, p.options())
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	resp := RebuildResponse{
		Output: out,
		Stats:  res.Stats,
		CCDF:   ccdf.Compare(res.Old.InDegrees(), res.New.InDegrees()),
	}

	if dbPath != "" {
		run, err := saveRun(dbPath, storage.Run{EdgesPath: p.cfg.Inputs.Edges, OutputPath: out, Fraction: fraction}, res)
		if err != nil {
			exitWithError(ExitError, "storing run: %v", err)
		}
		resp.RunID = run.ID
		p.logger.Info().Str("run_id", run.ID).Str("db", dbPath).Msg("Run stored")
	}

	if humanOutput {
		outputHuman("Threshold:        %.6f\n", res.Threshold)
		outputHuman("Edges scored:     %d\n", res.Total)
		outputHuman("Edges retained:   %d\n", res.Retained)
		outputHuman("Edges removed:    %d\n", res.Removed)
		if res.Skipped > 0 {
			outputHuman("Edges skipped:    %d (missing publication year)\n", res.Skipped)
		}
		outputHuman("Papers reinserted: %d\n", res.Reinserted)
		outputHuman("The percentage of removed edge is %v\n", res.RemovedFraction)
		outputHuman("Weighted network: %s\n", out)
		if resp.RunID != "" {
			outputHuman("Run ID:           %s\n", resp.RunID)
		}
		outputHuman("\n")
		printCCDFHuman("Original network", resp.CCDF.Old)
		printCCDFHuman("After hub removal", resp.CCDF.New)
		return nil
	}
	return outputJSON(resp)
}

// saveRun stores a rebuild and the edges it wrote.
func saveRun(dbPath string, run storage.Run, res *reweight.Result) (*storage.Run, error) {
	edges, err := citation.ReadWeighted(run.OutputPath)
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.SaveRun(run, res, edges)
}
