package schemas_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jd-matcher/internal/schemas"
	schemafiles "github.com/jonathan/jd-matcher/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"match_verdict.schema.json",
	"candidates.schema.json",
	"education_entries.schema.json",
	"candidate_results.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v any
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_CompileAsJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err)
		})
	}
}

func TestSchemaFiles_Embedded(t *testing.T) {
	embedded, err := fs.Glob(schemafiles.FS, "*.schema.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, schemaFiles, embedded)
}

func TestSchemaNames_MatchFiles(t *testing.T) {
	for _, name := range []string{
		schemas.MatchVerdict,
		schemas.Candidates,
		schemas.EducationEntries,
		schemas.CandidateResults,
	} {
		assert.Contains(t, schemaFiles, schemas.FileName(name))
	}
}

func TestCandidateResults_AcceptsBatchOutput(t *testing.T) {
	doc := `[
		{
			"candidate_id": "c-1",
			"verdict": {
				"match_percent": 0,
				"level": "Rejected",
				"subscores": {"experience": 80, "skill": 50, "education": 60, "language": 60, "certificate": 50},
				"adjustments": {"recency_boost": 0, "seniority_penalty": 0, "coverage_score": 0},
				"status": "REJECT",
				"explanation": "Missing mandatory skills: kubernetes",
				"missing_skills": ["kubernetes"]
			},
			"institutions": {
				"matches": [{"canonical_name": "RMIT University Vietnam", "tier": "international", "quality_weight": 0.85}],
				"boost": 0.85,
				"verification_needed": false,
				"verification_reasons": null
			}
		}
	]`

	err := schemas.NewValidator("").Validate(schemas.CandidateResults, []byte(doc))
	assert.NoError(t, err)
}
