package ranking

import (
	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Education scores
const (
	noRequirementWithDegree = 80.0
	noRequirementNoDegree   = 40.0
	degreeGapPenalty        = 40.0
	belowRequirementCap     = 95.0
)

// EducationScore is the education subscore with the degrees it compared.
type EducationScore struct {
	Score     float64
	Requested types.DegreeLevel
	Attained  types.DegreeLevel
}

// ScoreEducation compares the lowest degree the JD asks for with the highest
// degree the CV shows. A CV below the requirement never reaches 100.
func ScoreEducation(jd, cv parsing.Document) EducationScore {
	return scoreEducation(ProfileFromDocument(jd), cv)
}

func scoreEducation(jd *JobProfile, cv parsing.Document) EducationScore {
	result := EducationScore{
		Requested: jd.Degree,
		Attained:  parsing.HighestDegree(cv.Normalized),
	}

	switch {
	case result.Requested == types.DegreeNone && result.Attained != types.DegreeNone:
		result.Score = noRequirementWithDegree
	case result.Requested == types.DegreeNone:
		result.Score = noRequirementNoDegree
	case result.Attained == types.DegreeNone:
		result.Score = minScore
	case result.Attained >= result.Requested:
		result.Score = maxScore
	default:
		gap := float64(result.Requested - result.Attained)
		result.Score = clamp(maxScore-degreeGapPenalty*gap, minScore, belowRequirementCap)
	}

	return result
}
