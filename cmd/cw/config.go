package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matsen/citeweight/internal/config"
)

func init() {
	configCmd.Flags().String("write", "", "Write the effective configuration to this path")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file and flags are applied.

Config file lookup order:
  --config flag
  $CW_CONFIG
  ./citeweight.yml
  ~/.config/citeweight/config.yml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path   string         `json:"path,omitempty"`
	Config *config.Config `json:"config"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	if path, _ := cmd.Flags().GetString("write"); path != "" {
		if err := cfg.Save(config.ExpandPath(path)); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			exitWithError(ExitError, "encoding config: %v", err)
		}
		outputHuman("%s", data)
		return nil
	}
	return outputJSON(ConfigResponse{Path: config.Locate(configPath), Config: cfg})
}
