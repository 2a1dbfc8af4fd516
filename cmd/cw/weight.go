package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(weightCmd)
}

var weightCmd = &cobra.Command{
	Use:   "weight <citing-id> <cited-id>",
	Short: "Score a single citation and show each signal",
	Args:  cobra.ExactArgs(2),
	RunE:  runWeight,
}

func runWeight(cmd *cobra.Command, args []string) error {
	p := mustLoadPipeline()

	b, err := p.model.Explain(args[0], args[1])
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		outputHuman("%s ==> %s\n", b.Citing, b.Cited)
		outputHuman("  cited year %d    decay       %.6f\n", b.CitedYear, b.Decay)
		outputHuman("  citing year %d   papers      %d\n", b.CitingYear, b.AnnualCount)
		outputHuman("  normalized              %.6f\n", b.Normalized)
		if b.SameCommunity {
			outputHuman("  shared community        x%.2f\n", p.cfg.Model.CommunityBoost)
		}
		outputHuman("  weight                  %.6f\n", b.Weight)
		return nil
	}
	return outputJSON(b)
}
