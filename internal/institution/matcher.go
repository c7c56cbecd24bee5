package institution

import (
	"fmt"
	"strings"

	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Verification reasons
const (
	reasonFakePattern = "institution name matches a known marketing or fake pattern (%q)"
	reasonAmbiguous   = "generic institution name %q is ambiguous without a city or campus"
)

// MatchLine matches one free-text line. Fake names are rejected before any
// lookup; generic names without a location are flagged whether or not a
// record is found.
func (idx *Index) MatchLine(line string) types.InstitutionMatch {
	text := keyText(line)
	result := types.InstitutionMatch{
		Raw:        line,
		Normalized: text,
	}
	if text == "" {
		return result
	}

	if pattern, ok := containsAny(text, fakePatterns); ok {
		result.NeedsVerification = true
		result.Reason = fmt.Sprintf(reasonFakePattern, pattern)
		return result
	}

	if generic, ok := containsAny(text, genericNames); ok && !hasLocation(text) {
		result.NeedsVerification = true
		result.Reason = fmt.Sprintf(reasonAmbiguous, generic)
	}

	if rec, ok := idx.lookup(text); ok {
		result.Matched = rec
	}

	return result
}

// EvaluateEducation matches every school, degree and major field of the
// entries. Matches are deduplicated by canonical name keeping the first;
// the boost is the mean quality weight of the matches.
func (idx *Index) EvaluateEducation(entries []types.EducationEntry) types.InstitutionEvaluation {
	eval := types.InstitutionEvaluation{
		Matches:             []types.InstitutionRecord{},
		VerificationReasons: []string{},
	}
	seenMatch := make(map[string]bool)
	seenReason := make(map[string]bool)

	for _, entry := range entries {
		for _, field := range []string{entry.School, entry.Degree, entry.Major} {
			if strings.TrimSpace(field) == "" {
				continue
			}

			m := idx.MatchLine(field)
			if m.Matched != nil && !seenMatch[m.Matched.CanonicalName] {
				seenMatch[m.Matched.CanonicalName] = true
				eval.Matches = append(eval.Matches, *m.Matched)
			}
			if m.NeedsVerification {
				eval.VerificationNeeded = true
				if m.Reason != "" && !seenReason[m.Reason] {
					seenReason[m.Reason] = true
					eval.VerificationReasons = append(eval.VerificationReasons, m.Reason)
				}
			}
		}
	}

	if len(eval.Matches) > 0 {
		total := 0.0
		for _, rec := range eval.Matches {
			total += rec.QualityWeight
		}
		eval.Boost = total / float64(len(eval.Matches))
	}

	return eval
}

// MatchInstitutionLine matches a line against the default index.
func MatchInstitutionLine(line string) types.InstitutionMatch {
	return Default().MatchLine(line)
}

// EvaluateInstitutionsFromEducation evaluates entries against the default index.
func EvaluateInstitutionsFromEducation(entries []types.EducationEntry) types.InstitutionEvaluation {
	return Default().EvaluateEducation(entries)
}

func hasLocation(text string) bool {
	if _, ok := containsAny(text, cityIndicators); ok {
		return true
	}
	_, ok := containsAny(text, locatingKeywords)
	return ok
}

// containsAny returns the longest pattern contained in text as a phrase.
func containsAny(text string, patterns []string) (string, bool) {
	best := ""
	for _, p := range patterns {
		if len(p) > len(best) && parsing.ContainsTerm(text, p) {
			best = p
		}
	}
	return best, best != ""
}
