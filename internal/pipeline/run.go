// Package pipeline scores batches of candidates against one job description.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jd-matcher/internal/institution"
	"github.com/jonathan/jd-matcher/internal/logger"
	"github.com/jonathan/jd-matcher/internal/metrics"
	"github.com/jonathan/jd-matcher/internal/ranking"
	"github.com/jonathan/jd-matcher/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	RunID       string       `json:"run_id"`
	CandidateID string       `json:"candidate_id"`
	Status      types.Status `json:"status"`
	Done        int          `json:"done"`
	Total       int          `json:"total"`
}

// ProgressCallback is called once per scored candidate. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a batch run
type Options struct {
	Workers    int                   // Concurrent scorers; <= 0 means runtime.NumCPU()
	Weights    *types.PartialWeights // Weight overrides; nil keeps the defaults
	Logger     *zap.Logger           // nil disables logging
	Metrics    *metrics.Metrics      // nil disables metrics
	Index      *institution.Index    // nil uses institution.Default()
	OnProgress ProgressCallback
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Index == nil {
		o.Index = institution.Default()
	}
	return o
}

// Scorer scores single candidates with a fixed configuration.
// It is safe for concurrent use.
type Scorer struct {
	matcher *ranking.Matcher
	index   *institution.Index
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewScorer builds a scorer from opts. Workers and OnProgress are ignored.
func NewScorer(opts Options) *Scorer {
	opts = opts.withDefaults()
	return &Scorer{
		matcher: ranking.NewMatcher(opts.Weights, opts.Logger),
		index:   opts.Index,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

// Score matches one candidate against the JD. A candidate without an ID
// is given a fresh one.
func (s *Scorer) Score(jd string, c types.Candidate) types.CandidateResult {
	return s.ScoreProfile(ranking.NewJobProfile(jd), c)
}

// ScoreProfile is Score against a JD parsed once with ranking.NewJobProfile.
func (s *Scorer) ScoreProfile(jd *ranking.JobProfile, c types.Candidate) types.CandidateResult {
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	log := logger.WithCandidate(s.logger, id, c.Name)
	if s.metrics != nil {
		s.metrics.CandidatesActive.Inc()
		defer s.metrics.CandidatesActive.Dec()
	}

	start := time.Now()
	verdict := s.matcher.MatchProfile(jd, c.CV)
	elapsed := time.Since(start)

	result := types.CandidateResult{
		CandidateID: id,
		Name:        c.Name,
		Verdict:     verdict,
	}

	if len(c.Education) > 0 {
		eval := s.index.EvaluateEducation(c.Education)
		result.Institutions = &eval
		if eval.VerificationNeeded {
			log.Warn("institution needs verification",
				zap.Strings("reasons", eval.VerificationReasons))
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveVerdict(verdict, elapsed)
		s.metrics.ObserveInstitutions(result.Institutions)
	}

	log.Debug("candidate scored",
		zap.String("status", string(verdict.Status)),
		zap.Int("match_percent", verdict.MatchPercent),
		zap.Duration("elapsed", elapsed),
	)

	return result
}

// ScoreAll scores every candidate against jd on a bounded worker pool.
// Result i belongs to candidates[i]. Cancelling ctx stops scheduling and
// returns the context error.
func ScoreAll(ctx context.Context, jd string, candidates []types.Candidate, opts Options) ([]types.CandidateResult, error) {
	opts = opts.withDefaults()

	runID := uuid.NewString()
	log := logger.WithFields(opts.Logger, zap.String(logger.FieldRunID, runID))
	opts.Logger = log
	scorer := NewScorer(opts)
	profile := ranking.NewJobProfile(jd)

	log.Info("batch started",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", opts.Workers),
		zap.Int("must_have", len(profile.Skills.Must)),
	)

	results := make([]types.CandidateResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	var progressMu sync.Mutex // Serializes progress callbacks
	done := 0

	for i := range candidates {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			results[i] = scorer.ScoreProfile(profile, candidates[i])

			progressMu.Lock()
			done++
			if opts.OnProgress != nil {
				opts.OnProgress(ProgressEvent{
					RunID:       runID,
					CandidateID: results[i].CandidateID,
					Status:      results[i].Verdict.Status,
					Done:        done,
					Total:       len(candidates),
				})
			}
			progressMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch scoring stopped: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch scoring stopped: %w", err)
	}

	log.Info("batch finished", zap.Int("scored", done))
	return results, nil
}
