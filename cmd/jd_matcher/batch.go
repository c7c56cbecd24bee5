package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jonathan/jd-matcher/internal/candidates"
	"github.com/jonathan/jd-matcher/internal/config"
	"github.com/jonathan/jd-matcher/internal/ingestion"
	"github.com/jonathan/jd-matcher/internal/metrics"
	"github.com/jonathan/jd-matcher/internal/observability"
	"github.com/jonathan/jd-matcher/internal/pipeline"
	"github.com/jonathan/jd-matcher/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many candidates against one job description",
	Long: `Score every candidate in a JSON file against a job description on a worker pool.
Results keep the input order. Candidates with education entries also get an institution evaluation.`,
	RunE: runBatch,
}

var (
	batchJDFile         string
	batchCandidatesFile string
	batchOutFile        string
	batchMetricsFile    string
	batchWorkers        int
	batchTop            int
)

func init() {
	batchCmd.Flags().StringVar(&batchJDFile, "jd", "", "Path to job description text file")
	batchCmd.Flags().StringVar(&batchCandidatesFile, "candidates", "", "Path to candidates JSON file")
	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().StringVar(&batchMetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent scorers (default: number of CPUs)")
	batchCmd.Flags().IntVar(&batchTop, "top", pipeline.DefaultTopN, "Number of best candidates listed in the summary")
	addWeightFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := withFlags(settings, config.Config{
		JD:          batchJDFile,
		Candidates:  batchCandidatesFile,
		Out:         batchOutFile,
		MetricsFile: batchMetricsFile,
		Workers:     batchWorkers,
	})
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
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (or set candidates in the config file)")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	validator := schemas.NewValidator(cfg.SchemaDir)

	jdText, jdMeta, err := ingestion.IngestFromFile(cfg.JD)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	list, err := candidates.LoadCandidates(cfg.Candidates, validator)
	if err != nil {
		return err
	}

	log.Info("inputs loaded",
		zap.String("jd_hash", jdMeta.ShortHash()),
		zap.Int("candidates", len(list)),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	m := metrics.New()
	results, err := pipeline.ScoreAll(ctx, jdText, list, pipeline.Options{
		Workers: cfg.Workers,
		Weights: &cfg.Weights,
		Logger:  log,
		Metrics: m,
	})
	if err != nil {
		return err
	}

	summary := pipeline.Summarize(results, batchTop)
	log.Info("batch summary",
		zap.Int("passed", summary.Passed),
		zap.Int("rejected", summary.Rejected),
		zap.Float64("average_percent", summary.AveragePercent),
		zap.Int("verification_needed", summary.VerificationNeeded),
	)

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBatchSummary(&summary)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Debug("wrote metrics", zap.String("path", cfg.MetricsFile))
	}

	return writeJSON(cmd, log, validator, schemas.CandidateResults, results, cfg.Out)
}
