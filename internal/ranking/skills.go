package ranking

import (
	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Share of the skill base score carried by must-have and nice-to-have skills
const (
	mustHaveShare   = 0.7
	niceToHaveShare = 0.3
)

// SkillScore is the skill subscore with its category coverage and the
// must-have skills the CV lacks.
type SkillScore struct {
	Score              float64
	Base               float64
	Coverage           float64
	Skills             types.SkillSets
	MatchedMust        []string
	MatchedNice        []string
	MustMiss           []string
	RequiredCategories []string
	CoveredCategories  []string
}

// ScoreSkills scores the CV against the JD's must-have and nice-to-have
// skills, then gates the result by category coverage.
func ScoreSkills(jd, cv parsing.Document) SkillScore {
	return scoreSkills(ProfileFromDocument(jd), cv)
}

func scoreSkills(jd *JobProfile, cv parsing.Document) SkillScore {
	sets := jd.Skills
	terms := parsing.NewTermSet(cv.Normalized)

	result := SkillScore{Skills: sets}

	result.MatchedMust, result.MustMiss = partitionSkills(sets.Must, terms)
	result.MatchedNice, _ = partitionSkills(sets.Nice, terms)

	mustRatio := satisfiedRatio(len(result.MatchedMust), len(sets.Must))
	niceRatio := satisfiedRatio(len(result.MatchedNice), len(sets.Nice))
	result.Base = clampScore((mustRatio*mustHaveShare + niceRatio*niceToHaveShare) * 100)

	result.RequiredCategories = jd.Categories
	result.CoveredCategories = parsing.CoveredCategories(terms, result.RequiredCategories)

	result.Coverage = 1.0
	if len(result.RequiredCategories) > 0 {
		result.Coverage = float64(len(result.CoveredCategories)) / float64(len(result.RequiredCategories))
	}

	result.Score = clampScore(result.Base * result.Coverage)

	return result
}

func partitionSkills(skills []string, terms parsing.TermSet) (matched, missing []string) {
	for _, s := range skills {
		if terms.Has(s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

// satisfiedRatio treats an empty list as fully satisfied.
func satisfiedRatio(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}
