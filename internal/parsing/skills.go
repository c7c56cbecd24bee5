package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/jd-matcher/internal/types"
)

// Token length bounds for extracted skills
const (
	minSkillTokenLen = 2
	maxSkillTokenLen = 40
)

type skillKind int

const (
	kindNone skillKind = iota
	kindMust
	kindNice
)

var (
	mustMarkerRe  = regexp.MustCompile(`\b(must have|must-have|mandatory|required|bat buoc|yeu cau)\b`)
	niceMarkerRe  = regexp.MustCompile(`\b(nice to have|nice-to-have|uu tien|plus|bonus|preferred|advantage|loi the)\b`)
	sentenceEndRe = regexp.MustCompile(`[.!?](?:\s+|$)`)
	tokenSplitRe  = regexp.MustCompile(`[,/;|&]|\s+(?:and|or|va|hoac)\s+`)
	yearsPhraseRe = regexp.MustCompile(`\d{1,2}\s*(?:-\s*\d{1,2}\s*)?\+?\s*(?:years?|yrs?|nam|y)\b(?:\s+of)?`)
)

// leadingFillers are stripped from the start of a skill token, longest first.
var leadingFillers = sortedByLength([]string{
	"strong", "solid", "good", "excellent", "deep", "proven", "working", "practical",
	"hands-on", "at least", "ability to use", "technical", "tech stack", "stack",
	"experience with", "experience in", "experience of", "experienced in", "experienced with",
	"knowledge of", "knowledge in", "understanding of", "proficiency in", "proficient in",
	"familiarity with", "familiar with", "skills in", "skills", "skill", "expertise in",
	"with", "in", "of", "a", "an", "the", "is", "are", "candidates with", "candidate with",
	"kinh nghiem ve", "kinh nghiem", "hieu biet ve", "hieu biet", "su dung", "lam viec voi",
	"ung vien", "cong viec", "ky nang", "biet", "voi", "co", "ve",
})

// trailingFillers are stripped from the end of a skill token, longest first.
var trailingFillers = sortedByLength([]string{
	"is a plus", "a plus", "is preferred", "is an advantage",
	"is a big", "is a", "is an", "is required", "is preferred", "would be", "will be",
	"is", "are", "a", "an", "big", "skills", "skill", "experience", "knowledge",
	"required", "preferred", "mandatory", "bat buoc", "la mot", "la", "duoc",
})

// stopTokens never count as skills on their own.
var stopTokens = map[string]bool{
	"etc":          true,
	"experience":   true,
	"skills":       true,
	"knowledge":    true,
	"years":        true,
	"other":        true,
	"others":       true,
	"similar":      true,
	"related":      true,
	"tools":        true,
	"technologies": true,
}

// ExtractMustHaveSkills pulls must-have and nice-to-have skill tokens out of
// a folded JD (see Fold). Only lines carrying a marker contribute. A sentence
// is classified by the first must or nice marker it contains; the items after
// the marker (or before it when nothing follows) become tokens. An item that
// carries its own nice marker ("AWS is a plus") is filed as nice.
func ExtractMustHaveSkills(jd string) types.SkillSets {
	c := newSkillCollector()

	for _, raw := range strings.Split(jd, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, sentence := range splitSentences(line) {
			kind, items, ok := classifySentence(sentence)
			if !ok || items == "" {
				continue
			}
			c.addItems(kind, items)
		}
	}

	return c.result()
}

func splitSentences(line string) []string {
	parts := sentenceEndRe.Split(line, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// classifySentence finds the earliest marker and returns the item text it
// governs. An empty item text with ok=true means a bare marker.
func classifySentence(sentence string) (skillKind, string, bool) {
	kind := kindNone
	var loc []int

	if m := mustMarkerRe.FindStringIndex(sentence); m != nil {
		kind, loc = kindMust, m
	}
	if n := niceMarkerRe.FindStringIndex(sentence); n != nil && (loc == nil || n[0] < loc[0]) {
		kind, loc = kindNice, n
	}
	if kind == kindNone {
		return kindNone, "", false
	}

	after := trimItemPunct(sentence[loc[1]:])
	if stripFillers(after) != "" {
		return kind, after, true
	}

	before := trimItemPunct(sentence[:loc[0]])
	if stripFillers(before) == "" {
		return kind, "", true
	}
	return kind, before, true
}

// splitItem strips a nice marker from one item and reports whether it had one.
func splitItem(item string) (string, bool) {
	loc := niceMarkerRe.FindStringIndex(item)
	if loc == nil {
		return item, false
	}
	return item[:loc[0]] + " " + item[loc[1]:], true
}

// cleanSkillToken normalizes one raw item and returns "" when it is not a
// usable skill token.
func cleanSkillToken(raw string) string {
	tok := yearsPhraseRe.ReplaceAllString(Normalize(raw), " ")

	words := strings.Fields(tok)
	cleaned := words[:0]
	for _, w := range words {
		if w = cleanWord(w); w != "" {
			cleaned = append(cleaned, w)
		}
	}
	tok = CanonicalSkill(stripFillers(strings.Join(cleaned, " ")))

	if len(tok) < minSkillTokenLen || len(tok) > maxSkillTokenLen {
		return ""
	}
	if !strings.ContainsFunc(tok, unicode.IsLetter) || stopTokens[tok] {
		return ""
	}
	for _, p := range DegreePatterns {
		if p.Pattern.MatchString(tok) {
			return ""
		}
	}
	return tok
}

func trimItemPunct(s string) string {
	return strings.Trim(s, " \t:-*•–,;()")
}

func stripFillers(s string) string {
	s = strings.TrimSpace(s)
	for changed := true; changed && s != ""; {
		changed = false
		for _, f := range leadingFillers {
			if s == f {
				return ""
			}
			if strings.HasPrefix(s, f+" ") {
				s = trimItemPunct(s[len(f)+1:])
				changed = true
				break
			}
		}
	}
	for changed := true; changed && s != ""; {
		changed = false
		for _, f := range trailingFillers {
			if strings.HasSuffix(s, " "+f) {
				s = trimItemPunct(s[:len(s)-len(f)-1])
				changed = true
				break
			}
		}
	}
	return s
}

func sortedByLength(list []string) []string {
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i]) > len(list[j])
	})
	return list
}

type skillCollector struct {
	must, nice []string
	seen       map[string]skillKind
}

func newSkillCollector() *skillCollector {
	return &skillCollector{seen: make(map[string]skillKind)}
}

func (c *skillCollector) add(kind skillKind, tokens []string) {
	for _, tok := range tokens {
		prev, ok := c.seen[tok]
		switch {
		case !ok:
			c.seen[tok] = kind
		case prev == kindNice && kind == kindMust:
			// promoted: a must mention outranks an earlier nice mention
			c.seen[tok] = kindMust
			c.nice = removeString(c.nice, tok)
		default:
			continue
		}
		if kind == kindMust {
			c.must = append(c.must, tok)
		} else {
			c.nice = append(c.nice, tok)
		}
	}
}

// addItems splits an item list and files each token under kind, or under
// nice when the item carries its own nice marker.
func (c *skillCollector) addItems(kind skillKind, items string) {
	for _, item := range tokenSplitRe.Split(items, -1) {
		itemKind := kind
		if stripped, nice := splitItem(item); nice {
			item, itemKind = stripped, kindNice
		}
		if tok := cleanSkillToken(item); tok != "" {
			c.add(itemKind, []string{tok})
		}
	}
}

func (c *skillCollector) result() types.SkillSets {
	return types.SkillSets{Must: c.must, Nice: c.nice}
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
