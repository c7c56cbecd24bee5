package types

// InstitutionTier classifies an academic institution.
type InstitutionTier string

// Institution tiers
const (
	TierTop           InstitutionTier = "top"
	TierHigh          InstitutionTier = "high"
	TierStandard      InstitutionTier = "standard"
	TierInternational InstitutionTier = "international"
)

// InstitutionRecord is one entry of the static institution table.
// Records are immutable once the table is built.
type InstitutionRecord struct {
	CanonicalName string          `json:"canonical_name"`
	Aliases       []string        `json:"aliases,omitempty"`
	Tier          InstitutionTier `json:"tier"`
	QualityWeight float64         `json:"quality_weight"` // 0.0-1.0
}

// InstitutionMatch is the result of matching one free-text line.
type InstitutionMatch struct {
	Raw               string             `json:"raw"`
	Matched           *InstitutionRecord `json:"matched"`
	Normalized        string             `json:"normalized"`
	NeedsVerification bool               `json:"needs_verification,omitempty"`
	Reason            string             `json:"reason,omitempty"`
}

// EducationEntry is one structured education item produced by an upstream
// résumé parser. Every field is optional.
type EducationEntry struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Major  string `json:"major,omitempty"`
}

// InstitutionEvaluation aggregates the matches of an education list.
type InstitutionEvaluation struct {
	Matches             []InstitutionRecord `json:"matches"`
	Boost               float64             `json:"boost"`
	VerificationNeeded  bool                `json:"verification_needed"`
	VerificationReasons []string            `json:"verification_reasons"`
}
