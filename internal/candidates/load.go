package candidates

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jd-matcher/internal/schemas"
	"github.com/jonathan/jd-matcher/internal/types"
)

// LoadCandidates loads a JSON array of candidates, validates it against the
// candidates schema when v is non-nil, and normalizes the result.
func LoadCandidates(path string, v *schemas.Validator) ([]types.Candidate, error) {
	content, err := readValidated(path, schemas.Candidates, v)
	if err != nil {
		return nil, err
	}

	var list []types.Candidate
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := Normalize(list); err != nil {
		return nil, err
	}

	return list, nil
}

// LoadEducation loads a JSON array of education entries. Entries with no
// field set are dropped.
func LoadEducation(path string, v *schemas.Validator) ([]types.EducationEntry, error) {
	content, err := readValidated(path, schemas.EducationEntries, v)
	if err != nil {
		return nil, err
	}

	var entries []types.EducationEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return NormalizeEducation(entries), nil
}

func readValidated(path, schema string, v *schemas.Validator) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	if v != nil {
		if err := v.Validate(schema, content); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: fmt.Sprintf("schema validation failed against %s", schemas.FileName(schema)),
				Cause:   err,
			}
		}
	}

	return content, nil
}
