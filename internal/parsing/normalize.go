// Package parsing turns raw JD and CV text into normalized text and the
// typed signals the scorers consume.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// skillAliases maps common skill spellings to the form used for matching
var skillAliases = map[string]string{
	"golang":     "go",
	"go lang":    "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"angularjs":  "angular",
	"nodejs":     "node.js",
	"next.js":    "nextjs",
	"postgres":   "postgresql",
	"mongo":      "mongodb",
	"sklearn":    "scikit-learn",
	"ml":         "machine learning",
	"dl":         "deep learning",
	"tf":         "tensorflow",
	"gke":        "kubernetes",
	"amazon aws": "aws",
}

// Fold lowercases text and strips diacritics, keeping punctuation and line
// breaks. "đ" is folded to "d" since it has no decomposition.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lower)
	if err != nil {
		folded = lower
	}

	return strings.ReplaceAll(folded, "đ", "d")
}

// Normalize folds text, replaces every character outside [a-z0-9+./#-] with a
// space and collapses whitespace. Line breaks are kept (blank lines dropped)
// so line-oriented extractors still see the document structure.
// Normalize is total and idempotent.
func Normalize(text string) string {
	folded := Fold(text)
	if folded == "" {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == '+', r == '.', r == '/', r == '#', r == '-', r == '\n':
			return r
		default:
			return ' '
		}
	}, folded)

	lines := strings.Split(cleaned, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}

	return strings.Join(out, "\n")
}

// CanonicalSkill returns the matching form of a normalized skill token.
func CanonicalSkill(token string) string {
	token = strings.TrimSpace(token)
	if canonical, ok := skillAliases[token]; ok {
		return canonical
	}
	return token
}

// cleanWord trims sentence punctuation that Normalize leaves on word edges.
func cleanWord(w string) string {
	return strings.Trim(w, ".-/")
}
