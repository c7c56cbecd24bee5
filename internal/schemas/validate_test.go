package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidator_FieldErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName("person"), personSchema)
	v := NewValidator(dir)

	err := v.Validate("person", []byte(`{"name": "An", "age": "thirty"}`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "person", validationErr.Schema)
	assert.Equal(t, "age", validationErr.Errors[0].Field)

	err = v.Validate("person", []byte(`{"age": 30}`))
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "candidates",
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation against candidates failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Path: "x.schema.json", Message: "invalid schema", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to load schema x.schema.json")
}

func TestValidator_EmbeddedSchemas(t *testing.T) {
	v := NewValidator("")

	verdict := map[string]any{
		"match_percent": 89,
		"level":         "Expert",
		"subscores":     map[string]int{"experience": 100, "skill": 100, "education": 100, "language": 60, "certificate": 50},
		"adjustments":   map[string]any{"recency_boost": 0, "seniority_penalty": 0, "coverage_score": 1.0},
		"status":        "PASS",
		"explanation":   "Expert match at 89%.",
	}
	data, err := json.Marshal(verdict)
	require.NoError(t, err)
	assert.NoError(t, v.Validate(MatchVerdict, data))

	verdict["match_percent"] = 120
	data, err = json.Marshal(verdict)
	require.NoError(t, err)
	err = v.Validate(MatchVerdict, data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, MatchVerdict, validationErr.Schema)
}

func TestValidator_Candidates(t *testing.T) {
	v := NewValidator("")

	assert.NoError(t, v.Validate(Candidates, []byte(`[{"id": "a", "cv": "Go developer", "education": [{"school": "HUST"}]}]`)))
	assert.Error(t, v.Validate(Candidates, []byte(`[{"id": "a"}]`)))
	assert.Error(t, v.Validate(Candidates, []byte(`[{"cv": "x", "salary": 10}]`)))
}

func TestValidator_EducationEntries(t *testing.T) {
	v := NewValidator("")

	assert.NoError(t, v.Validate(EducationEntries, []byte(`[{"school": "HUST", "degree": "Bachelor", "major": "CS"}, {}]`)))
	assert.Error(t, v.Validate(EducationEntries, []byte(`{"school": "HUST"}`)))
}

func TestValidator_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName("person"), personSchema)

	v := NewValidator(dir)
	assert.NoError(t, v.Validate("person", []byte(`{"name": "An"}`)))
	assert.Error(t, v.Validate("person", []byte(`{}`)))
}

func TestValidator_MissingSchema(t *testing.T) {
	err := NewValidator("").Validate("nonexistent", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "nonexistent.schema.json", loadErr.Path)

	err = NewValidator(t.TempDir()).Validate("nonexistent", []byte(`{}`))
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "not found")
}

func TestValidator_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName("broken"), `{"type": 12}`)

	err := NewValidator(dir).Validate("broken", []byte(`{}`))

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidator_MalformedDocument(t *testing.T) {
	err := NewValidator("").Validate(Candidates, []byte(`[{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}
