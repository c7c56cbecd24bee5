package main

import (
	"fmt"

	"github.com/jonathan/jd-matcher/internal/config"
	"github.com/jonathan/jd-matcher/internal/ingestion"
	"github.com/jonathan/jd-matcher/internal/observability"
	"github.com/jonathan/jd-matcher/internal/ranking"
	"github.com/jonathan/jd-matcher/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one CV against a job description",
	Long:  "Score a CV text file against a job description text file and output the MatchVerdict JSON.",
	RunE:  runMatch,
}

var (
	matchJDFile  string
	matchCVFile  string
	matchOutFile string
)

func init() {
	matchCmd.Flags().StringVar(&matchJDFile, "jd", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchCVFile, "cv", "", "Path to CV text file (required)")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Path to output JSON file (default stdout)")
	addWeightFlags(matchCmd)

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := withFlags(settings, config.Config{JD: matchJDFile, Out: matchOutFile})
	cfg.Weights, err = weightOverrides(cmd, cfg.Weights)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.JD == "" {
		return fmt.Errorf("--jd is required (or set jd in the config file)")
	}
	if matchCVFile == "" {
		return fmt.Errorf("--cv is required")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jdText, jdMeta, err := ingestion.IngestFromFile(cfg.JD)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	cvText, cvMeta, err := ingestion.IngestFromFile(matchCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}

	log.Debug("inputs loaded",
		zap.String("jd_hash", jdMeta.ShortHash()),
		zap.Int("jd_lines", jdMeta.Lines),
		zap.String("cv_hash", cvMeta.ShortHash()),
		zap.Int("cv_lines", cvMeta.Lines),
	)

	matcher := ranking.NewMatcher(&cfg.Weights, log)
	verdict := matcher.Match(jdText, cvText)

	log.Info("match complete",
		zap.String("status", string(verdict.Status)),
		zap.String("level", string(verdict.Level)),
		zap.Int("match_percent", verdict.MatchPercent),
	)

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintVerdict("", &verdict)
	}

	validator := schemas.NewValidator(cfg.SchemaDir)
	return writeJSON(cmd, log, validator, schemas.MatchVerdict, verdict, cfg.Out)
}
