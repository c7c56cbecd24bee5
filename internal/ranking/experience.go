package ranking

import (
	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Experience coefficients
const (
	pointsPerYear       = 8.0  // score per CV year when the JD states no requirement
	neutralExperience   = 30.0 // score when there is no years signal to compare
	maxRecencyBoost     = 10
	flatRecencyBoost    = 5 // domain match but no JD years to compare against
	recencyHeadLines    = 8
	missingLevelPenalty = 10
	seniorityGapPenalty = 7
	maxSeniorityPenalty = 20
)

// ExperienceScore is the experience subscore with its adjustment signals.
type ExperienceScore struct {
	Score            float64
	RecencyBoost     int
	SeniorityPenalty int
	JDYears          types.YearsRange
	CVYears          types.YearsRange
	JDLevel          types.SeniorityLevel
	CVLevel          types.SeniorityLevel
}

// ScoreExperience compares years of experience and seniority.
// A years figure of 0 counts as no requirement on the JD side and as no
// signal on the CV side.
func ScoreExperience(jd, cv parsing.Document) ExperienceScore {
	return scoreExperience(ProfileFromDocument(jd), cv)
}

func scoreExperience(jd *JobProfile, cv parsing.Document) ExperienceScore {
	result := ExperienceScore{
		JDYears: jd.Years,
		CVYears: parsing.DetectYears(cv.Normalized),
		JDLevel: jd.Seniority,
		CVLevel: parsing.DetectSeniority(cv.Normalized),
	}

	jdMax := 0
	if result.JDYears.Found {
		jdMax = result.JDYears.Max
	}
	cvAny := 0
	if result.CVYears.Found {
		cvAny = result.CVYears.Any
	}

	switch {
	case jdMax > 0 && cvAny >= jdMax:
		result.Score = maxScore
	case jdMax > 0 && cvAny > 0:
		result.Score = clampScore(float64(cvAny) / float64(jdMax) * 100)
	case jdMax > 0:
		result.Score = neutralExperience
	case cvAny > 0:
		result.Score = clampScore(float64(cvAny) * pointsPerYear)
	default:
		result.Score = neutralExperience
	}

	if parsing.HasDomainToken(cv.Head(recencyHeadLines)) {
		if jdMax > 0 {
			result.RecencyBoost = clampInt(min(maxRecencyBoost, cvAny-jdMax), 0, maxRecencyBoost)
		} else {
			result.RecencyBoost = flatRecencyBoost
		}
	}

	result.SeniorityPenalty = seniorityPenalty(result.JDLevel, result.CVLevel)

	return result
}

func seniorityPenalty(jdLevel, cvLevel types.SeniorityLevel) int {
	if jdLevel == types.SeniorityNone {
		return 0
	}
	if cvLevel == types.SeniorityNone {
		return missingLevelPenalty
	}

	penalty := 0
	if cvLevel < jdLevel {
		penalty = seniorityGapPenalty * int(jdLevel-cvLevel)
	}
	return clampInt(penalty, 0, maxSeniorityPenalty)
}
