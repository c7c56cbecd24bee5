package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jd-matcher/internal/types"
)

// maxListedMissing caps the missing skills named in a rejection.
const maxListedMissing = 5

// buildExplanation creates a short human-readable summary of a verdict.
func buildExplanation(v types.MatchVerdict) string {
	if v.Status == types.StatusReject {
		return rejectionNote(v.MissingSkills)
	}

	parts := []string{
		fmt.Sprintf("%s match at %d%%", v.Level, v.MatchPercent),
		fmt.Sprintf("Experience %d%%", v.Subscores.Experience),
		fmt.Sprintf("Skills %d%%", v.Subscores.Skill),
		fmt.Sprintf("Education %d%%", v.Subscores.Education),
		fmt.Sprintf("Language %d%%", v.Subscores.Language),
		fmt.Sprintf("Certificates %d%%", v.Subscores.Certificate),
		fmt.Sprintf("Category coverage %d%%", int(math.Round(v.Adjustments.CoverageScore*100))),
	}

	if v.Adjustments.RecencyBoost != 0 {
		parts = append(parts, fmt.Sprintf("Recency +%d", v.Adjustments.RecencyBoost))
	}
	if v.Adjustments.SeniorityPenalty != 0 {
		parts = append(parts, fmt.Sprintf("Seniority -%d", v.Adjustments.SeniorityPenalty))
	}

	return strings.Join(parts, ". ")
}

func rejectionNote(missing []string) string {
	listed := missing
	if len(listed) > maxListedMissing {
		listed = listed[:maxListedMissing]
	}

	note := "Rejected: missing must-have skills: " + strings.Join(listed, ", ")
	if extra := len(missing) - len(listed); extra > 0 {
		note += fmt.Sprintf(" (+%d more)", extra)
	}
	return note
}
