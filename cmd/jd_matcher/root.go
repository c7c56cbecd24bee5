package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/jd-matcher/internal/config"
	"github.com/jonathan/jd-matcher/internal/logger"
	"github.com/jonathan/jd-matcher/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "jd_matcher"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "Deterministic job description to CV matcher",
	Long:          "jd_matcher scores CVs against a job description with keyword and pattern rules and reports a structured verdict.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile   string
	debugLogs bool
	jsonLogs  bool
	verbose   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (JSON or YAML); JD_MATCHER_* environment variables apply without one")
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "JSON log format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable report to stderr")
}

// loadSettings reads the config file (or the environment) and applies the
// global flags on top.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfig(cfgFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugLogs
	}
	if flags.Changed("json") {
		cfg.JSONLogs = jsonLogs
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	return *cfg, nil
}

// withFlags fills the empty fields of flagValues from settings. Behavior
// switches always come from settings, which already reflect the global flags.
func withFlags(settings, flagValues config.Config) config.Config {
	cfg := flagValues.MergeWithDefaults(settings)
	cfg.Verbose = settings.Verbose
	cfg.Debug = settings.Debug
	cfg.JSONLogs = settings.JSONLogs
	return cfg
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log.With(zap.String("app", app)), nil
}

// writeJSON marshals v, checks it against the named schema when validator is
// set and writes it to path, or to the command's stdout when path is empty.
func writeJSON(cmd *cobra.Command, log *zap.Logger, validator *schemas.Validator, schema string, v any, path string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if validator == nil {
		return writeOutput(cmd, log, jsonBytes, path)
	}

	if err := validator.Validate(schema, jsonBytes); err != nil {
		// Distinguish between validation errors (data doesn't match schema) and schema load errors
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		log.Warn("could not validate output against schema", zap.String("schema", schema), zap.Error(err))
	}

	return writeOutput(cmd, log, jsonBytes, path)
}

func writeOutput(cmd *cobra.Command, log *zap.Logger, jsonBytes []byte, path string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info("wrote output", zap.String("path", path))
	return nil
}
