// Package config handles run configuration for the reweighting pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/matsen/citeweight/internal/reweight"
	"github.com/matsen/citeweight/internal/weight"
)

const (
	// ConfigFile is the config file looked up in the working directory.
	ConfigFile = "citeweight.yml"
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "citeweight"
	// GlobalConfigFile is the config file name under GlobalConfigDir.
	GlobalConfigFile = "config.yml"
	// EnvConfig names an explicit config file.
	EnvConfig = "CW_CONFIG"
)

// Inputs names the files a run reads.
type Inputs struct {
	Years       string `yaml:"years" json:"years"`             // paper_ids.txt
	Authors     string `yaml:"authors" json:"authors"`         // paper_author_affiliations.txt
	Communities string `yaml:"communities" json:"communities"` // community_results.txt
	Edges       string `yaml:"edges" json:"edges"`             // paper_citation_network.txt
}

// Output names the files a run writes.
type Output struct {
	Edges string `yaml:"edges" json:"edges"`
	DB    string `yaml:"db,omitempty" json:"db,omitempty"`
}

// Search configures the threshold sweep and the final rebuild.
type Search struct {
	Fractions     []float64 `yaml:"fractions" json:"fractions"`
	FinalFraction float64   `yaml:"final_fraction" json:"final_fraction"`
	CacheSize     int       `yaml:"cache_size" json:"cache_size"` // 0 re-scores every edge per threshold
}

// Config is the run configuration.
type Config struct {
	Inputs      Inputs        `yaml:"inputs" json:"inputs"`
	Output      Output        `yaml:"output" json:"output"`
	Model       weight.Params `yaml:"model" json:"model"`
	Search      Search        `yaml:"search" json:"search"`
	MissingYear string        `yaml:"missing_year" json:"missing_year"` // skip or abort
	LogLevel    string        `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Inputs: Inputs{
			Years:       "paper_ids.txt",
			Authors:     "paper_author_affiliations.txt",
			Communities: "community_results.txt",
			Edges:       "paper_citation_network.txt",
		},
		Output: Output{
			Edges: "weighted_paper_citation_network.txt",
		},
		Model: weight.DefaultParams(),
		Search: Search{
			Fractions:     append([]float64(nil), reweight.DefaultFractions...),
			FinalFraction: reweight.DefaultFinalFraction,
		},
		MissingYear: string(reweight.PolicySkip),
		LogLevel:    "info",
	}
}

// GlobalConfigPath returns the per-user config file path.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citeweight/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Locate picks the config file to load: an explicit path, then $CW_CONFIG,
// then ./citeweight.yml, then the global config. It returns "" when none
// exists.
func Locate(explicit string) string {
	if explicit != "" {
		return ExpandPath(explicit)
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return ExpandPath(env)
	}
	for _, candidate := range []string{ConfigFile, GlobalConfigPath()} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults. Relative input and output paths are resolved
// against the directory holding the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) resolve(base string) {
	for _, p := range []*string{
		&c.Inputs.Years, &c.Inputs.Authors, &c.Inputs.Communities, &c.Inputs.Edges,
		&c.Output.Edges, &c.Output.DB,
	} {
		if *p == "" {
			continue
		}
		*p = ExpandPath(*p)
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validation errors.
var (
	ErrInvalidK         = errors.New("model.k must be positive")
	ErrInvalidBoost     = errors.New("model.community_boost must be positive")
	ErrNoFractions      = errors.New("search.fractions is empty")
	ErrInvalidFraction  = errors.New("fractions must be in (0, 1]")
	ErrInvalidCacheSize = errors.New("search.cache_size must not be negative")
)

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Model.K <= 0 {
		return ErrInvalidK
	}
	if c.Model.CommunityBoost <= 0 {
		return ErrInvalidBoost
	}
	if len(c.Search.Fractions) == 0 {
		return ErrNoFractions
	}
	for _, f := range append([]float64{c.Search.FinalFraction}, c.Search.Fractions...) {
		if f <= 0 || f > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidFraction, f)
		}
	}
	if c.Search.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	if _, err := reweight.ParsePolicy(c.MissingYear); err != nil {
		return err
	}
	return nil
}

// Policy returns the configured missing-year policy.
func (c *Config) Policy() reweight.MissingPolicy {
	p, err := reweight.ParsePolicy(c.MissingYear)
	if err != nil {
		return reweight.PolicySkip
	}
	return p
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
