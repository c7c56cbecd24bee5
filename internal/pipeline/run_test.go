package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/jd-matcher/internal/metrics"
	"github.com/jonathan/jd-matcher/internal/ranking"
	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testJD       = "Must have: React, TypeScript. 3-5 years experience. Bachelor degree required."
	strongCV     = "5 years experience as frontend developer using React and TypeScript. Bachelor of Science."
	missingSkill = "5 years experience as frontend developer using React. Bachelor of Science."
)

func TestScoreAll_PreservesOrder(t *testing.T) {
	candidates := make([]types.Candidate, 0, 20)
	for i := range 20 {
		cv := strongCV
		if i%2 == 1 {
			cv = missingSkill
		}
		candidates = append(candidates, types.Candidate{ID: fmt.Sprintf("c-%02d", i), CV: cv})
	}

	results, err := ScoreAll(context.Background(), testJD, candidates, Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, results, len(candidates))

	for i, r := range results {
		assert.Equal(t, candidates[i].ID, r.CandidateID)
		want := ranking.ComputeJDMatch(testJD, candidates[i].CV, nil)
		assert.Equal(t, want, r.Verdict, "candidate %d", i)
	}
	assert.Equal(t, types.StatusPass, results[0].Verdict.Status)
	assert.Equal(t, types.StatusReject, results[1].Verdict.Status)
}

func TestScoreAll_AssignsMissingIDs(t *testing.T) {
	results, err := ScoreAll(context.Background(), testJD, []types.Candidate{
		{CV: strongCV},
		{ID: "keep-me", CV: strongCV},
	}, Options{})
	require.NoError(t, err)

	_, err = uuid.Parse(results[0].CandidateID)
	assert.NoError(t, err)
	assert.Equal(t, "keep-me", results[1].CandidateID)
}

func TestScoreAll_AppliesWeights(t *testing.T) {
	weights := &types.PartialWeights{
		Experience:  types.Float64(0),
		Skill:       types.Float64(1),
		Education:   types.Float64(0),
		Language:    types.Float64(0),
		Certificate: types.Float64(0),
	}

	results, err := ScoreAll(context.Background(), testJD, []types.Candidate{{ID: "a", CV: strongCV}}, Options{Weights: weights})
	require.NoError(t, err)
	assert.Equal(t, ranking.ComputeJDMatch(testJD, strongCV, weights), results[0].Verdict)
}

func TestScoreAll_EvaluatesEducation(t *testing.T) {
	results, err := ScoreAll(context.Background(), testJD, []types.Candidate{
		{ID: "edu", CV: strongCV, Education: []types.EducationEntry{{School: "Đại học Bách khoa Hà Nội"}}},
		{ID: "fake", CV: strongCV, Education: []types.EducationEntry{{School: "Đại học TOP CV Việt Nam"}}},
		{ID: "none", CV: strongCV},
	}, Options{})
	require.NoError(t, err)

	require.NotNil(t, results[0].Institutions)
	require.Len(t, results[0].Institutions.Matches, 1)
	assert.False(t, results[0].Institutions.VerificationNeeded)

	require.NotNil(t, results[1].Institutions)
	assert.True(t, results[1].Institutions.VerificationNeeded)

	assert.Nil(t, results[2].Institutions)
}

func TestScoreAll_Empty(t *testing.T) {
	results, err := ScoreAll(context.Background(), testJD, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScoreAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ScoreAll(ctx, testJD, []types.Candidate{{ID: "a", CV: strongCV}}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, results)
}

func TestScoreAll_RecordsMetrics(t *testing.T) {
	m := metrics.New()

	_, err := ScoreAll(context.Background(), testJD, []types.Candidate{
		{ID: "a", CV: strongCV},
		{ID: "b", CV: strongCV},
		{ID: "c", CV: missingSkill, Education: []types.EducationEntry{{School: "Đại học TOP CV Việt Nam"}}},
	}, Options{Metrics: m, Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("PASS", "Expert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("REJECT", "Rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CandidatesActive))
}

func TestScoreAll_LogsWithRunID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := ScoreAll(context.Background(), testJD, []types.Candidate{
		{ID: "a", Name: "Alice", CV: strongCV},
	}, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	started := logs.FilterMessage("batch started").All()
	require.Len(t, started, 1)
	runID, ok := started[0].ContextMap()["run_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, runID)

	scored := logs.FilterMessage("candidate scored").All()
	require.Len(t, scored, 1)
	fields := scored[0].ContextMap()
	assert.Equal(t, runID, fields["run_id"])
	assert.Equal(t, "a", fields["candidate_id"])
	assert.Equal(t, "Alice", fields["candidate_name"])
	assert.Equal(t, "PASS", fields["status"])

	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}

func TestScoreAll_ProgressCallback(t *testing.T) {
	var mu sync.Mutex
	var events []ProgressEvent

	candidates := []types.Candidate{
		{ID: "a", CV: strongCV},
		{ID: "b", CV: missingSkill},
		{ID: "c", CV: strongCV},
	}
	_, err := ScoreAll(context.Background(), testJD, candidates, Options{
		Workers: 2,
		OnProgress: func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		},
	})
	require.NoError(t, err)

	require.Len(t, events, 3)
	seen := map[string]bool{}
	for i, e := range events {
		assert.Equal(t, i+1, e.Done)
		assert.Equal(t, 3, e.Total)
		assert.Equal(t, events[0].RunID, e.RunID)
		seen[e.CandidateID] = true
	}
	assert.Len(t, seen, 3)
}

func TestScorer_Score(t *testing.T) {
	s := NewScorer(Options{})

	r := s.Score(testJD, types.Candidate{ID: "x", Name: "Xuan", CV: strongCV})

	assert.Equal(t, "x", r.CandidateID)
	assert.Equal(t, "Xuan", r.Name)
	assert.Equal(t, 89, r.Verdict.MatchPercent)
	assert.Equal(t, types.LevelExpert, r.Verdict.Level)
}

func TestScorer_ScoreProfileMatchesScore(t *testing.T) {
	s := NewScorer(Options{})
	profile := ranking.NewJobProfile(testJD)

	for _, c := range []types.Candidate{
		{ID: "a", CV: strongCV},
		{ID: "b", CV: "Go developer"},
	} {
		assert.Equal(t, s.Score(testJD, c), s.ScoreProfile(profile, c))
	}
}
