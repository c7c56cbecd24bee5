package types

import "github.com/go-playground/validator/v10"

// Candidate is one CV submitted for batch scoring against a JD.
type Candidate struct {
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name,omitempty"`
	CV        string           `json:"cv" validate:"required"`
	Education []EducationEntry `json:"education,omitempty"`
}

// Validate checks that the candidate carries CV text.
func (c *Candidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// CandidateResult ties a verdict back to the candidate that produced it.
type CandidateResult struct {
	CandidateID  string                 `json:"candidate_id"`
	Name         string                 `json:"name,omitempty"`
	Verdict      MatchVerdict           `json:"verdict"`
	Institutions *InstitutionEvaluation `json:"institutions,omitempty"`
}

// BatchSummary aggregates the results of one batch run.
type BatchSummary struct {
	Total              int           `json:"total"`
	Passed             int           `json:"passed"`
	Rejected           int           `json:"rejected"`
	ByLevel            map[Level]int `json:"by_level"`
	AveragePercent     float64       `json:"average_percent"` // over passing candidates
	VerificationNeeded int           `json:"verification_needed"`
	Top                []string      `json:"top,omitempty"` // candidate IDs, best first
}
