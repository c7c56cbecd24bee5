package pipeline

import (
	"sort"

	"github.com/jonathan/jd-matcher/internal/types"
)

// DefaultTopN is how many candidates Summarize lists as the best matches.
const DefaultTopN = 5

// Summarize aggregates batch results. Top lists up to topN passing
// candidates by descending match percent, ties kept in input order.
func Summarize(results []types.CandidateResult, topN int) types.BatchSummary {
	summary := types.BatchSummary{
		Total:   len(results),
		ByLevel: make(map[types.Level]int),
	}

	passing := make([]types.CandidateResult, 0, len(results))
	sum := 0
	for _, r := range results {
		summary.ByLevel[r.Verdict.Level]++
		if r.Institutions != nil && r.Institutions.VerificationNeeded {
			summary.VerificationNeeded++
		}
		if r.Verdict.Rejected() {
			summary.Rejected++
			continue
		}
		summary.Passed++
		sum += r.Verdict.MatchPercent
		passing = append(passing, r)
	}

	if summary.Passed > 0 {
		summary.AveragePercent = float64(sum) / float64(summary.Passed)
	}

	sort.SliceStable(passing, func(i, j int) bool {
		return passing[i].Verdict.MatchPercent > passing[j].Verdict.MatchPercent
	})
	if topN > len(passing) {
		topN = len(passing)
	}
	for _, r := range passing[:max(topN, 0)] {
		summary.Top = append(summary.Top, r.CandidateID)
	}

	return summary
}
