package candidates

import (
	"fmt"
	"strings"

	"github.com/jonathan/jd-matcher/internal/ingestion"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Normalize cleans candidates in place: CV text goes through
// ingestion.CleanText, fields are trimmed and empty education entries are
// dropped. Every candidate must carry CV text and IDs must be unique.
func Normalize(list []types.Candidate) error {
	seen := make(map[string]int, len(list))

	for i := range list {
		c := &list[i]
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		c.CV = ingestion.CleanText(c.CV)
		c.Education = NormalizeEducation(c.Education)

		if err := c.Validate(); err != nil {
			return &NormalizationError{Index: i, Message: "cv text is required", Cause: err}
		}

		if c.ID == "" {
			continue
		}
		if first, dup := seen[c.ID]; dup {
			return &NormalizationError{
				Index:   i,
				Message: fmt.Sprintf("duplicate id %q (first seen at candidate %d)", c.ID, first),
			}
		}
		seen[c.ID] = i
	}

	return nil
}

// NormalizeEducation trims every field and drops entries left empty.
func NormalizeEducation(entries []types.EducationEntry) []types.EducationEntry {
	if len(entries) == 0 {
		return nil
	}

	result := make([]types.EducationEntry, 0, len(entries))
	for _, e := range entries {
		e.School = strings.TrimSpace(e.School)
		e.Degree = strings.TrimSpace(e.Degree)
		e.Major = strings.TrimSpace(e.Major)
		if e.School == "" && e.Degree == "" && e.Major == "" {
			continue
		}
		result = append(result, e)
	}

	return result
}
