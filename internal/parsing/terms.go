package parsing

import "strings"

// TermSet is the tokenized word set of a normalized text. Single-word terms
// are looked up directly; multi-word terms match as space-bounded phrases.
type TermSet struct {
	words  map[string]bool
	padded string
}

// NewTermSet tokenizes normalized text on spaces, line breaks and slashes.
func NewTermSet(normalized string) TermSet {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '/'
	})

	words := make(map[string]bool, len(fields))
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		w := cleanWord(f)
		if w == "" {
			continue
		}
		cleaned = append(cleaned, w)
		words[w] = true
		words[CanonicalSkill(w)] = true
	}

	return TermSet{
		words:  words,
		padded: " " + strings.Join(cleaned, " ") + " ",
	}
}

// Has reports whether term appears in the set. The term is matched both as
// written and in its canonical skill form.
func (s TermSet) Has(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}

	if s.words[term] {
		return true
	}
	canonical := CanonicalSkill(term)
	if s.words[canonical] {
		return true
	}
	if strings.Contains(term, " ") && ContainsTerm(s.padded, term) {
		return true
	}
	return strings.Contains(canonical, " ") && ContainsTerm(s.padded, canonical)
}

// Len returns the number of distinct words.
func (s TermSet) Len() int {
	return len(s.words)
}

// ContainsTerm reports whether term occurs in text as a whole-word phrase.
func ContainsTerm(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+term+" ")
}
