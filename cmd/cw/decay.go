package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/weight"
)

func init() {
	defaults := weight.DefaultCurveParams()
	decayCmd.Flags().Int("start", defaults.Start, "First year")
	decayCmd.Flags().Int("end", defaults.End, "Last year")
	decayCmd.Flags().Float64("t0", defaults.T0, "Sigmoid center year")
	decayCmd.Flags().Float64("lambda", defaults.Lambda, "Sigmoid steepness and exponential rate")
	decayCmd.Flags().Float64("ref-year", defaults.RefYear, "Reference year for linear and exponential decay")
	decayCmd.Flags().Float64("slope", defaults.Slope, "Linear decay per year")
	rootCmd.AddCommand(decayCmd)
}

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Compare sigmoid, linear and exponential time decay",
	Long: `Tabulate the sigmoid decay used by the weight model next to linear and
exponential alternatives over a range of years, with the mean sigmoid weight.`,
	Args: cobra.NoArgs,
	RunE: runDecay,
}

func runDecay(cmd *cobra.Command, args []string) error {
	var p weight.CurveParams
	p.Start, _ = cmd.Flags().GetInt("start")
	p.End, _ = cmd.Flags().GetInt("end")
	p.T0, _ = cmd.Flags().GetFloat64("t0")
	p.Lambda, _ = cmd.Flags().GetFloat64("lambda")
	p.RefYear, _ = cmd.Flags().GetFloat64("ref-year")
	p.Slope, _ = cmd.Flags().GetFloat64("slope")

	if p.End < p.Start {
		exitWithError(ExitError, "--end (%d) is before --start (%d)", p.End, p.Start)
	}

	cmp := weight.CompareCurves(p)
	if humanOutput {
		outputHuman("The average weight is %v\n\n", cmp.MeanSigmoid)
		outputHuman("%6s  %8s  %8s  %11s\n", "year", "sigmoid", "linear", "exponential")
		for _, pt := range cmp.Points {
			outputHuman("%6d  %8.4f  %8.4f  %11.4f\n", pt.Year, pt.Sigmoid, pt.Linear, pt.Exponential)
		}
		return nil
	}
	return outputJSON(cmp)
}
