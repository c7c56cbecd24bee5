// Package schemas provides JSON Schema validation for the matcher's input and output documents.
package schemas

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/jd-matcher/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Schema names, without the .schema.json suffix
const (
	Candidates       = "candidates"
	EducationEntries = "education_entries"
	MatchVerdict     = "match_verdict"
	CandidateResults = "candidate_results"
)

// FileName returns the schema file name for a schema name.
func FileName(name string) string {
	return name + ".schema.json"
}

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
func ResolveSchemaPath(relativePath string) string {
	// Try paths in order:
	// 1. Relative to current working directory
	// 2. One level up (../schemas/...)
	// 3. Two levels up (../../schemas/...)
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		fmt.Fprintf(&sb, "validation against %s failed:\n", ve.Schema)
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validator validates documents against named schemas. Schemas come from
// dir when set, otherwise from the embedded copies. Compiled schemas are
// cached; a Validator is safe for concurrent use.
type Validator struct {
	dir string

	mu       sync.Mutex
	compiled map[string]*gojsonschema.Schema
}

// NewValidator creates a validator reading schemas from dir, or from the
// embedded schemas when dir is empty.
func NewValidator(dir string) *Validator {
	return &Validator{
		dir:      dir,
		compiled: make(map[string]*gojsonschema.Schema),
	}
}

// Validate checks data against the named schema.
func (v *Validator) Validate(name string, data []byte) error {
	schema, err := v.schema(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read document for %s: %w", name, err)
	}

	return resultError(name, result)
}

func (v *Validator) schema(name string) (*gojsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[name]; ok {
		return s, nil
	}

	path, content, err := v.read(name)
	if err != nil {
		return nil, err
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    path,
			Message: "invalid schema",
			Cause:   err,
		}
	}

	v.compiled[name] = s
	return s, nil
}

func (v *Validator) read(name string) (string, []byte, error) {
	file := FileName(name)

	if v.dir == "" {
		content, err := fs.ReadFile(schemafiles.FS, file)
		if err != nil {
			return file, nil, &SchemaLoadError{Path: file, Message: "schema not embedded", Cause: err}
		}
		return file, content, nil
	}

	path := ResolveSchemaPath(filepath.Join(v.dir, file))
	if path == "" {
		return file, nil, &SchemaLoadError{Path: filepath.Join(v.dir, file), Message: "schema file not found"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return path, nil, &SchemaLoadError{Path: path, Message: "failed to read schema", Cause: err}
	}
	return path, content, nil
}

// resultError turns a failed result into a ValidationError.
func resultError(schema string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: schema,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
