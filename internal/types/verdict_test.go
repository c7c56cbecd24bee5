package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchVerdict_JSONFieldNames(t *testing.T) {
	verdict := MatchVerdict{
		MatchPercent: 72,
		Level:        LevelAdvanced,
		Subscores:    Subscores{Experience: 100, Skill: 80, Education: 100, Language: 60, Certificate: 50},
		Adjustments:  Adjustments{RecencyBoost: 5, SeniorityPenalty: 0, CoverageScore: 1},
		Status:       StatusPass,
		Explanation:  "Experience 100%",
	}

	jsonBytes, err := json.MarshalIndent(verdict, "", "  ")
	require.NoError(t, err)
	out := string(jsonBytes)

	assert.Contains(t, out, `"match_percent": 72`)
	assert.Contains(t, out, `"level": "Advanced"`)
	assert.Contains(t, out, `"recency_boost": 5`)
	assert.Contains(t, out, `"seniority_penalty": 0`)
	assert.Contains(t, out, `"coverage_score": 1`)
	assert.Contains(t, out, `"status": "PASS"`)
	assert.Contains(t, out, `"certificate": 50`)
	assert.NotContains(t, out, "missing_skills")
}

func TestMatchVerdict_Rejected(t *testing.T) {
	assert.True(t, MatchVerdict{Status: StatusReject}.Rejected())
	assert.False(t, MatchVerdict{Status: StatusPass}.Rejected())
}

func TestCandidate_Validate(t *testing.T) {
	require.NoError(t, (&Candidate{ID: "c1", CV: "Go developer"}).Validate())

	err := (&Candidate{ID: "c2"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CV")
}

func TestDegreeLevel_String(t *testing.T) {
	assert.Equal(t, "bachelor", DegreeBachelor.String())
	assert.Equal(t, "phd", DegreePhD.String())
	assert.Equal(t, "none", DegreeNone.String())
	assert.Equal(t, "unknown", DegreeLevel(42).String())
	assert.Less(t, DegreeHighSchool, DegreeAssociate)
	assert.Less(t, DegreeMaster, DegreePhD)
}

func TestSeniorityLevel_String(t *testing.T) {
	assert.Equal(t, "intern", SeniorityIntern.String())
	assert.Equal(t, "principal", SeniorityPrincipal.String())
	assert.Equal(t, "unknown", SeniorityLevel(-3).String())
	assert.Less(t, SeniorityJunior, SenioritySenior)
}
