package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/config"
	"github.com/matsen/citeweight/internal/metadata"
)

func init() {
	yearsCmd.Flags().String("top-cited", "", "File of \"<year>, <count>\" rows for the most cited papers")
	rootCmd.AddCommand(yearsCmd)
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Show the publication year distribution",
	Long: `Show how many papers were published in each year, the histogram that
drives annual publication normalization.

With --top-cited, also show the year distribution of the most cited papers,
largest count first.`,
	Args: cobra.NoArgs,
	RunE: runYears,
}

// YearsResponse is the response for the years command.
type YearsResponse struct {
	Papers   int                  `json:"papers"`
	Median   float64              `json:"median_annual_count"`
	Years    []metadata.YearCount `json:"years"`
	TopCited []metadata.YearCount `json:"top_cited,omitempty"`
}

func runYears(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	years, err := metadata.LoadYears(cfg.Inputs.Years)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	hist := metadata.NewYearHistogram(years)

	resp := YearsResponse{
		Papers: len(years),
		Median: hist.Median(),
		Years:  hist.Sorted(),
	}

	if path, _ := cmd.Flags().GetString("top-cited"); path != "" {
		top, err := metadata.LoadYearCounts(config.ExpandPath(path))
		if err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
		resp.TopCited = top
	}

	if humanOutput {
		outputHuman("%d papers with a publication year, median %.1f per year\n\n", resp.Papers, resp.Median)
		for _, yc := range resp.Years {
			outputHuman("%6d  %d\n", yc.Year, yc.Count)
		}
		if len(resp.TopCited) > 0 {
			outputHuman("\nMost cited papers by year:\n")
			for _, yc := range resp.TopCited {
				outputHuman("%6d  %d\n", yc.Year, yc.Count)
			}
		}
		return nil
	}
	return outputJSON(resp)
}
