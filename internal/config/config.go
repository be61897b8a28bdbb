// Package config loads pharmkit CLI configuration from an optional YAML
// file and PHARMKIT_* environment variables, applies defaults, and
// validates the result.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings, so that
// nested keys like "consensus.hdist" resolve to "PHARMKIT_CONSENSUS_HDIST".
const envPrefix = "PHARMKIT"

// Config is the full CLI configuration.
type Config struct {
	Pharmit   PharmitConfig   `mapstructure:"pharmit"`
	Consensus ConsensusConfig `mapstructure:"consensus"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// PharmitConfig locates and parameterizes the external pharmit executable.
type PharmitConfig struct {
	Bin        string `mapstructure:"bin"`
	Subcommand string `mapstructure:"subcommand"`
	Format     string `mapstructure:"format"`
}

// ConsensusConfig carries the consensus computation parameters.
type ConsensusConfig struct {
	HDist           float64 `mapstructure:"hdist"`
	ProximityRadius float64 `mapstructure:"proximity_radius"`
}

// OutputConfig controls where results and diagnostics are written.
type OutputConfig struct {
	Folder      string `mapstructure:"folder"`
	Diagnostics bool   `mapstructure:"diagnostics"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// newViper builds a pre-configured viper instance: YAML files, PHARMKIT_
// env prefix, automatic env binding, "." → "_" key mapping. Defaults are
// registered with viper itself: Unmarshal only resolves environment
// variables for keys viper knows about, so without these an env-only
// configuration (no file) would be silently ignored.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("pharmit.bin", "pharmitserver")
	v.SetDefault("pharmit.subcommand", "pharma")
	v.SetDefault("pharmit.format", "json")
	v.SetDefault("consensus.hdist", 0.17)
	v.SetDefault("consensus.proximity_radius", 1.5)
	v.SetDefault("output.folder", ".")
	v.SetDefault("output.diagnostics", false)
	v.SetDefault("log.level", "info")
	return v
}

// Load reads the YAML file at path, merges PHARMKIT_* environment
// overrides, applies defaults, and validates. An empty path skips the file
// and builds the config from environment and defaults alone.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Pharmit.Bin == "" {
		cfg.Pharmit.Bin = "pharmitserver"
	}
	if cfg.Pharmit.Subcommand == "" {
		cfg.Pharmit.Subcommand = "pharma"
	}
	if cfg.Pharmit.Format == "" {
		cfg.Pharmit.Format = "json"
	}
	if cfg.Consensus.HDist == 0 {
		cfg.Consensus.HDist = 0.17
	}
	if cfg.Consensus.ProximityRadius == 0 {
		cfg.Consensus.ProximityRadius = 1.5
	}
	if cfg.Output.Folder == "" {
		cfg.Output.Folder = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate returns a descriptive error for the first invalid field.
func (c *Config) Validate() error {
	if c.Pharmit.Format != "json" && c.Pharmit.Format != "xml" {
		return fmt.Errorf("config: pharmit.format must be \"json\" or \"xml\", got %q", c.Pharmit.Format)
	}
	if c.Consensus.HDist <= 0 {
		return fmt.Errorf("config: consensus.hdist must be > 0, got %f", c.Consensus.HDist)
	}
	if c.Consensus.ProximityRadius <= 0 {
		return fmt.Errorf("config: consensus.proximity_radius must be > 0, got %f", c.Consensus.ProximityRadius)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}
