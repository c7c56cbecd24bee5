package ranking

import "github.com/jonathan/jd-matcher/internal/parsing"

// Language scoring
const (
	neutralLanguage  = 60.0
	proficiencyBonus = 10.0
)

// LanguageScore is the language subscore with the signals behind it.
type LanguageScore struct {
	Score         float64
	Required      []string
	Present       []string
	Proficiencies []string
}

// ScoreLanguage awards an equal share for each JD language found in the CV,
// plus a bonus per distinct proficiency pattern in the CV.
func ScoreLanguage(jd, cv parsing.Document) LanguageScore {
	return scoreLanguage(ProfileFromDocument(jd), cv)
}

func scoreLanguage(jd *JobProfile, cv parsing.Document) LanguageScore {
	result := LanguageScore{Required: jd.Languages}
	if len(result.Required) == 0 {
		result.Score = neutralLanguage
		return result
	}

	cvLanguages := make(map[string]bool)
	for _, lang := range parsing.DetectLanguages(cv.Normalized) {
		cvLanguages[lang] = true
	}

	share := maxScore / float64(len(result.Required))
	score := 0.0
	for _, lang := range result.Required {
		if cvLanguages[lang] {
			result.Present = append(result.Present, lang)
			score = clampScore(score + share)
		}
	}

	result.Proficiencies = parsing.MatchProficiencies(cv.Normalized)
	for range result.Proficiencies {
		score = clampScore(score + proficiencyBonus)
	}

	result.Score = score
	return result
}
