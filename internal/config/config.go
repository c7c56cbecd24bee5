// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. JD_MATCHER_WORKERS.
const EnvPrefix = "JD_MATCHER"

// MaxWorkers bounds the batch worker pool.
const MaxWorkers = 256

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; CLI flags win over file values.
type Config struct {
	// Paths
	JD          string `mapstructure:"jd"`           // Path to job description text file
	Candidates  string `mapstructure:"candidates"`   // Path to candidates JSON file
	Out         string `mapstructure:"out"`          // Output path for results
	MetricsFile string `mapstructure:"metrics_file"` // Prometheus textfile output
	SchemaDir   string `mapstructure:"schema_dir"`   // Directory holding the JSON schemas

	// Scoring
	Weights types.PartialWeights `mapstructure:"weights"`
	Workers int                  `mapstructure:"workers" validate:"gte=0,lte=256"`

	// Behavior
	Verbose  bool `mapstructure:"verbose"`   // Print a human-readable report
	Debug    bool `mapstructure:"debug"`     // Debug logging
	JSONLogs bool `mapstructure:"json_logs"` // JSON log encoding
}

// fileTypes are the config file extensions read by their own format.
var fileTypes = []string{"json", "yaml", "yml", "toml"}

// envDefaults are the keys environment variables may override.
var envDefaults = map[string]any{
	"jd":           "",
	"candidates":   "",
	"out":          "",
	"metrics_file": "",
	"schema_dir":   "",
	"workers":      0,
	"verbose":      false,
	"debug":        false,
	"json_logs":    false,
}

// LoadConfig loads configuration from a file. The format follows the file
// extension (json, yaml, toml); unknown extensions are read as JSON.
// Environment variables prefixed with JD_MATCHER_ override file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(fileTypes, ext) {
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables alone.
func FromEnv() (*Config, error) {
	v := newViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment config: %w", err)
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so register every
	// overridable key with its zero value.
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}

	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("config error: weights must be non-negative: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}
	if result.SchemaDir == "" {
		result.SchemaDir = defaults.SchemaDir
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Weight overrides: keep ours, fill the rest
	if result.Weights.Experience == nil {
		result.Weights.Experience = defaults.Weights.Experience
	}
	if result.Weights.Skill == nil {
		result.Weights.Skill = defaults.Weights.Skill
	}
	if result.Weights.Education == nil {
		result.Weights.Education = defaults.Weights.Education
	}
	if result.Weights.Language == nil {
		result.Weights.Language = defaults.Weights.Language
	}
	if result.Weights.Certificate == nil {
		result.Weights.Certificate = defaults.Weights.Certificate
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
