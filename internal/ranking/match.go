package ranking

import (
	"math"

	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
	"go.uber.org/zap"
)

// Level thresholds on the final match percent
const (
	expertThreshold       = 85
	advancedThreshold     = 70
	intermediateThreshold = 50
	beginnerThreshold     = 30
)

// Evaluation is a verdict together with the subscore details it was built from.
type Evaluation struct {
	Verdict     types.MatchVerdict
	Weights     types.WeightConfiguration
	Experience  ExperienceScore
	Skills      SkillScore
	Education   EducationScore
	Language    LanguageScore
	Certificate CertificateScore
	// BasePercent is the weighted sum before adjustments, unrounded
	BasePercent float64
}

// ComputeJDMatch scores raw CV text against raw JD text. weights may be nil
// or partial; missing fields keep their defaults and the result is
// renormalized to sum 100.
func ComputeJDMatch(jdText, cvText string, weights *types.PartialWeights) types.MatchVerdict {
	return Evaluate(jdText, cvText, EffectiveWeights(weights)).Verdict
}

// EffectiveWeights merges overrides over the defaults and renormalizes.
func EffectiveWeights(weights *types.PartialWeights) types.WeightConfiguration {
	return types.DefaultWeights().Merge(weights).Normalize()
}

// Evaluate runs every subscore calculator and aggregates them. weights must
// already be normalized.
func Evaluate(jdText, cvText string, weights types.WeightConfiguration) Evaluation {
	return EvaluateProfile(NewJobProfile(jdText), cvText, weights)
}

// EvaluateProfile is Evaluate against a JD parsed once with NewJobProfile.
func EvaluateProfile(jd *JobProfile, cvText string, weights types.WeightConfiguration) Evaluation {
	cv := parsing.NewDocument(cvText)

	e := Evaluation{
		Weights:     weights,
		Experience:  scoreExperience(jd, cv),
		Skills:      scoreSkills(jd, cv),
		Education:   scoreEducation(jd, cv),
		Language:    scoreLanguage(jd, cv),
		Certificate: scoreCertificates(jd, cv),
	}

	e.BasePercent = e.Experience.Score/100*weights.Experience +
		e.Skills.Score/100*weights.Skill +
		e.Education.Score/100*weights.Education +
		e.Language.Score/100*weights.Language +
		e.Certificate.Score/100*weights.Certificate

	v := types.MatchVerdict{
		Subscores: types.Subscores{
			Experience:  roundScore(e.Experience.Score),
			Skill:       roundScore(e.Skills.Score),
			Education:   roundScore(e.Education.Score),
			Language:    roundScore(e.Language.Score),
			Certificate: roundScore(e.Certificate.Score),
		},
		Adjustments: types.Adjustments{
			RecencyBoost:     e.Experience.RecencyBoost,
			SeniorityPenalty: e.Experience.SeniorityPenalty,
			CoverageScore:    clamp(e.Skills.Coverage, 0, 1),
		},
		MissingSkills:       e.Skills.MustMiss,
		MissingCertificates: e.Certificate.Missing,
	}

	if len(e.Skills.MustMiss) > 0 {
		v.Status = types.StatusReject
		v.MatchPercent = 0
		v.Level = types.LevelRejected
	} else {
		final := e.BasePercent + float64(v.Adjustments.RecencyBoost) - float64(v.Adjustments.SeniorityPenalty)
		v.Status = types.StatusPass
		v.MatchPercent = int(math.Round(clampScore(final)))
		v.Level = ClassifyLevel(v.MatchPercent)
	}

	v.Explanation = buildExplanation(v)
	e.Verdict = v

	return e
}

// ClassifyLevel maps a passing match percent to its level label.
func ClassifyLevel(percent int) types.Level {
	switch {
	case percent >= expertThreshold:
		return types.LevelExpert
	case percent >= advancedThreshold:
		return types.LevelAdvanced
	case percent >= intermediateThreshold:
		return types.LevelIntermediate
	case percent >= beginnerThreshold:
		return types.LevelBeginner
	default:
		return types.LevelUnqualified
	}
}

// Matcher holds a fixed weight configuration and logs each verdict.
// It is safe for concurrent use.
type Matcher struct {
	weights types.WeightConfiguration
	logger  *zap.Logger
}

// NewMatcher creates a matcher. A nil logger disables logging.
func NewMatcher(weights *types.PartialWeights, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		weights: EffectiveWeights(weights),
		logger:  logger,
	}
}

// Weights returns the normalized weights in use.
func (m *Matcher) Weights() types.WeightConfiguration {
	return m.weights
}

// Match scores one CV against the JD.
func (m *Matcher) Match(jdText, cvText string) types.MatchVerdict {
	return m.Evaluate(jdText, cvText).Verdict
}

// MatchProfile scores one CV against a parsed JD.
func (m *Matcher) MatchProfile(jd *JobProfile, cvText string) types.MatchVerdict {
	return m.EvaluateProfile(jd, cvText).Verdict
}

// Evaluate scores one CV and returns the full breakdown.
func (m *Matcher) Evaluate(jdText, cvText string) Evaluation {
	return m.EvaluateProfile(NewJobProfile(jdText), cvText)
}

// EvaluateProfile scores one CV against a parsed JD and returns the full
// breakdown.
func (m *Matcher) EvaluateProfile(jd *JobProfile, cvText string) Evaluation {
	e := EvaluateProfile(jd, cvText, m.weights)

	m.logger.Debug("scored cv",
		zap.String("status", string(e.Verdict.Status)),
		zap.String("level", string(e.Verdict.Level)),
		zap.Int("match_percent", e.Verdict.MatchPercent),
		zap.Float64("base_percent", e.BasePercent),
		zap.Strings("must_have", e.Skills.Skills.Must),
		zap.Strings("must_miss", e.Skills.MustMiss),
		zap.Float64("coverage", e.Skills.Coverage),
	)

	return e
}
