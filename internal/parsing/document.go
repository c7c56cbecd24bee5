package parsing

import "strings"

// Document is one input text prepared once for every extractor.
type Document struct {
	Raw        string
	Folded     string
	Normalized string
}

// NewDocument folds and normalizes raw text.
func NewDocument(raw string) Document {
	return Document{
		Raw:        raw,
		Folded:     Fold(raw),
		Normalized: Normalize(raw),
	}
}

// Lines returns the non-empty normalized lines.
func (d Document) Lines() []string {
	if d.Normalized == "" {
		return nil
	}
	return strings.Split(d.Normalized, "\n")
}

// Head returns the first n normalized lines joined by a newline.
func (d Document) Head(n int) string {
	lines := d.Lines()
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
