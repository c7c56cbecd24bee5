// Package candidates loads and normalizes batch candidate and education files.
package candidates

import "fmt"

// LoadError represents an error during file I/O, schema validation or JSON parsing
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError represents an invalid candidate found during normalization
type NormalizationError struct {
	Index   int
	Message string
	Cause   error
}

func (e *NormalizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("normalization error: candidate %d: %s: %v", e.Index, e.Message, e.Cause)
	}
	return fmt.Sprintf("normalization error: candidate %d: %s", e.Index, e.Message)
}

func (e *NormalizationError) Unwrap() error {
	return e.Cause
}
