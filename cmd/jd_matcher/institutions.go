package main

import (
	"github.com/jonathan/jd-matcher/internal/candidates"
	"github.com/jonathan/jd-matcher/internal/config"
	"github.com/jonathan/jd-matcher/internal/ingestion"
	"github.com/jonathan/jd-matcher/internal/institution"
	"github.com/jonathan/jd-matcher/internal/logger"
	"github.com/jonathan/jd-matcher/internal/observability"
	"github.com/jonathan/jd-matcher/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var institutionsCmd = &cobra.Command{
	Use:   "institutions",
	Short: "Match education entries against the institution table",
	Long: `Evaluate a JSON array of education entries, or match a single free-text line,
against the built-in institution table and report verification flags.`,
	RunE: runInstitutions,
}

var (
	institutionsEducationFile string
	institutionsLine          string
	institutionsOutFile       string
)

func init() {
	institutionsCmd.Flags().StringVar(&institutionsEducationFile, "education", "", "Path to education entries JSON file")
	institutionsCmd.Flags().StringVar(&institutionsLine, "line", "", "A single institution line to match")
	institutionsCmd.Flags().StringVarP(&institutionsOutFile, "out", "o", "", "Path to output JSON file (default stdout)")
	institutionsCmd.MarkFlagsMutuallyExclusive("education", "line")
	institutionsCmd.MarkFlagsOneRequired("education", "line")

	rootCmd.AddCommand(institutionsCmd)
}

func runInstitutions(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := withFlags(settings, config.Config{Out: institutionsOutFile})

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	validator := schemas.NewValidator(cfg.SchemaDir)
	printer := observability.NewPrinter(cmd.ErrOrStderr())

	if institutionsLine != "" {
		line, meta := ingestion.IngestFromString(institutionsLine, "--line")
		match := institution.MatchInstitutionLine(line)
		log.Debug("matched line",
			zap.String("line", logger.Truncate(line, 80)),
			zap.String("line_hash", meta.ShortHash()),
			zap.Bool("matched", match.Matched != nil),
			zap.Bool("needs_verification", match.NeedsVerification),
		)
		if cfg.Verbose {
			printer.PrintInstitutionMatch(&match)
		}
		return writeJSON(cmd, log, nil, "", match, cfg.Out)
	}

	entries, err := candidates.LoadEducation(institutionsEducationFile, validator)
	if err != nil {
		return err
	}

	eval := institution.EvaluateInstitutionsFromEducation(entries)
	log.Info("institutions evaluated",
		zap.Int("entries", len(entries)),
		zap.Int("matches", len(eval.Matches)),
		zap.Bool("verification_needed", eval.VerificationNeeded),
	)
	if cfg.Verbose {
		printer.PrintInstitutions(&eval)
	}

	return writeJSON(cmd, log, nil, "", eval, cfg.Out)
}
