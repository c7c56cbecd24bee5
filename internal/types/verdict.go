package types

// Status is the outcome of the mandatory-skill gate.
type Status string

// Gate outcomes
const (
	StatusPass   Status = "PASS"
	StatusReject Status = "REJECT"
)

// Level is the qualitative label derived from the match percent.
type Level string

// Levels, highest first
const (
	LevelExpert       Level = "Expert"
	LevelAdvanced     Level = "Advanced"
	LevelIntermediate Level = "Intermediate"
	LevelBeginner     Level = "Beginner"
	LevelUnqualified  Level = "Unqualified"
	LevelRejected     Level = "Rejected"
)

// Subscores holds the five component scores, each an integer in [0,100].
type Subscores struct {
	Experience  int `json:"experience"`
	Skill       int `json:"skill"`
	Education   int `json:"education"`
	Language    int `json:"language"`
	Certificate int `json:"certificate"`
}

// Adjustments are the signals applied on top of the weighted base.
type Adjustments struct {
	RecencyBoost     int     `json:"recency_boost"`     // 0-10
	SeniorityPenalty int     `json:"seniority_penalty"` // 0-20
	CoverageScore    float64 `json:"coverage_score"`    // 0.0-1.0
}

// MatchVerdict is the result of scoring one CV against one JD.
type MatchVerdict struct {
	MatchPercent int         `json:"match_percent"`
	Level        Level       `json:"level"`
	Subscores    Subscores   `json:"subscores"`
	Adjustments  Adjustments `json:"adjustments"`
	Status       Status      `json:"status"`
	Explanation  string      `json:"explanation"`
	// MissingSkills lists must-have JD skills absent from the CV
	MissingSkills []string `json:"missing_skills,omitempty"`
	// MissingCertificates lists JD certificates absent from the CV
	MissingCertificates []string `json:"missing_certificates,omitempty"`
}

// Rejected reports whether the verdict failed the mandatory-skill gate.
func (v MatchVerdict) Rejected() bool {
	return v.Status == StatusReject
}
