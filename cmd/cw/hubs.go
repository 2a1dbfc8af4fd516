package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/config"
	"github.com/matsen/citeweight/internal/storage"
)

func init() {
	hubsCmd.Flags().String("db", "", "SQLite database written by rebuild --db (default: output.db)")
	hubsCmd.Flags().String("run", "", "Run ID (default: latest run)")
	hubsCmd.Flags().IntP("limit", "n", 20, "Number of papers to show")
	rootCmd.AddCommand(hubsCmd)
}

var hubsCmd = &cobra.Command{
	Use:   "hubs",
	Short: "List the most cited papers of a stored run",
	Long: `List the papers with the largest original in-degree in a stored rebuild,
next to their in-degree after pruning.`,
	Args: cobra.NoArgs,
	RunE: runHubs,
}

// HubsResponse is the response for the hubs command.
type HubsResponse struct {
	Run  storage.Run   `json:"run"`
	Hubs []storage.Hub `json:"hubs"`
}

func runHubs(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	dbPath := cfg.Output.DB
	if s, _ := cmd.Flags().GetString("db"); s != "" {
		dbPath = config.ExpandPath(s)
	}
	if dbPath == "" {
		exitWithError(ExitConfigError, "no database: pass --db or set output.db")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		exitWithError(ExitError, "--limit must be positive")
	}

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	var run *storage.Run
	if id, _ := cmd.Flags().GetString("run"); id != "" {
		run, err = db.GetRun(id)
	} else {
		run, err = db.LatestRun()
	}
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	hubs, err := db.TopHubs(run.ID, limit)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Run %s (threshold %.6f, %s)\n\n", run.ID, run.Threshold, run.CreatedAt)
		outputHuman("%-24s  %10s  %10s  %10s\n", "paper", "in-degree", "pruned", "max weight")
		for _, h := range hubs {
			outputHuman("%-24s  %10d  %10d  %10.6f\n", h.PaperID, h.OldDegree, h.NewDegree, h.MaxWeight)
		}
		return nil
	}
	if hubs == nil {
		hubs = []storage.Hub{}
	}
	return outputJSON(HubsResponse{Run: *run, Hubs: hubs})
}
