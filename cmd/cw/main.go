// Package main provides the cw CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	configPath  string
	logLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cw",
	Short: "Citation network edge re-weighting",
	Long: `cw re-weights the edges of an academic citation network.

Each citation is scored from the cited paper's publication year (logistic
time decay), the publication volume of the citing paper's year, and whether
the two papers share an author community. A threshold sweep shows how far
hub in-degrees fall as low-weight edges are pruned, and rebuild writes the
pruned weighted network with before/after CCDF statistics.

All commands output JSON by default; use --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: $CW_CONFIG, ./citeweight.yml, ~/.config/citeweight/config.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.Version = Version
}

// mustLoadConfig loads and validates the configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(config.Locate(configPath))
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		exitWithError(ExitConfigError, "invalid config: %v", err)
	}
	return cfg
}

// newLogger returns the stderr logger for a command.
func newLogger(cfg *config.Config) *zerolog.Logger {
	logger := config.NewLogger(cfg.LogLevel, os.Stderr)
	return &logger
}
