package parsing

import (
	"regexp"

	"github.com/jonathan/jd-matcher/internal/types"
)

// DegreePattern pairs a degree level with its bilingual pattern.
type DegreePattern struct {
	Level   types.DegreeLevel
	Pattern *regexp.Regexp
}

// DegreePatterns is ordered low to high.
var DegreePatterns = []DegreePattern{
	{types.DegreeHighSchool, regexp.MustCompile(`\b(high school|secondary school|thpt|trung hoc pho thong)\b`)},
	{types.DegreeAssociate, regexp.MustCompile(`\b(associate degree|associate s degree|associates degree|cao dang|college diploma)\b`)},
	{types.DegreeBachelor, regexp.MustCompile(`\b(cu nhan|bachelor|bachelors|bachelor s|degree|dai hoc|university|b\.?sc|b\.?eng)\b`)},
	{types.DegreeMaster, regexp.MustCompile(`\b(masters? (degree|of|in)|master s|thac si|m\.?sc|mba)\b`)},
	{types.DegreePhD, regexp.MustCompile(`\b(ph\.?d|doctorate|doctoral|tien si)\b`)},
}

// RequestedDegree returns the lowest degree level mentioned in a JD.
func RequestedDegree(normalized string) types.DegreeLevel {
	for _, p := range DegreePatterns {
		if p.Pattern.MatchString(normalized) {
			return p.Level
		}
	}
	return types.DegreeNone
}

// HighestDegree returns the highest degree level mentioned in a CV.
func HighestDegree(normalized string) types.DegreeLevel {
	for i := len(DegreePatterns) - 1; i >= 0; i-- {
		if DegreePatterns[i].Pattern.MatchString(normalized) {
			return DegreePatterns[i].Level
		}
	}
	return types.DegreeNone
}

// SeniorityPattern pairs a seniority level with its pattern.
type SeniorityPattern struct {
	Level   types.SeniorityLevel
	Pattern *regexp.Regexp
}

// SeniorityPatterns is ordered intern < junior < mid < senior < lead < principal.
var SeniorityPatterns = []SeniorityPattern{
	{types.SeniorityIntern, regexp.MustCompile(`\b(intern|interns|internship|thuc tap sinh|thuc tap)\b`)},
	{types.SeniorityJunior, regexp.MustCompile(`\b(junior|juniors|jr|fresher|entry level|entry-level)\b`)},
	{types.SeniorityMid, regexp.MustCompile(`\b(mid|middle|mid-level|intermediate level)\b`)},
	{types.SenioritySenior, regexp.MustCompile(`\b(senior|seniors|sr)\b`)},
	{types.SeniorityLead, regexp.MustCompile(`\b(lead|team lead|tech lead|leader|truong nhom)\b`)},
	{types.SeniorityPrincipal, regexp.MustCompile(`\b(principal|staff engineer|distinguished)\b`)},
}

// DetectSeniority returns the first level of the ladder found in the text,
// scanning from intern upwards.
func DetectSeniority(normalized string) types.SeniorityLevel {
	for _, p := range SeniorityPatterns {
		if p.Pattern.MatchString(normalized) {
			return p.Level
		}
	}
	return types.SeniorityNone
}

// NamedPattern is a named regular expression.
type NamedPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// LanguagePatterns lists the spoken languages a JD may require.
var LanguagePatterns = []NamedPattern{
	{"english", regexp.MustCompile(`\b(english|tieng anh)\b`)},
	{"japanese", regexp.MustCompile(`\b(japanese|tieng nhat)\b`)},
	{"korean", regexp.MustCompile(`\b(korean|tieng han)\b`)},
	{"chinese", regexp.MustCompile(`\b(chinese|mandarin|tieng trung|tieng hoa)\b`)},
	{"german", regexp.MustCompile(`\b(german|tieng duc)\b`)},
	{"french", regexp.MustCompile(`\b(french|tieng phap)\b`)},
}

// ProficiencyPatterns lists language proficiency evidence. Each distinct
// pattern found in a CV earns a bonus.
var ProficiencyPatterns = []NamedPattern{
	{"ielts", regexp.MustCompile(`\bielts\s*\d(\.\d)?\b`)},
	{"toeic", regexp.MustCompile(`\btoeic\s*\d{3}\b`)},
	{"toefl", regexp.MustCompile(`\btoefl\s*(ibt\s*)?\d{2,3}\b`)},
	{"jlpt", regexp.MustCompile(`\bjlpt\s*n?[1-5]\b`)},
	{"topik", regexp.MustCompile(`\btopik\s*[1-6]\b`)},
	{"hsk", regexp.MustCompile(`\bhsk\s*[1-6]\b`)},
	{"native", regexp.MustCompile(`\b(native|fluent|fluency|thanh thao|ban ngu)\b`)},
	{"cefr", regexp.MustCompile(`\b[abc][12]\b`)},
	{"basic", regexp.MustCompile(`\b(basic|elementary|co ban|so cap)\b`)},
}

// DetectLanguages returns the names of the languages mentioned in the text.
func DetectLanguages(normalized string) []string {
	var found []string
	for _, p := range LanguagePatterns {
		if p.Pattern.MatchString(normalized) {
			found = append(found, p.Name)
		}
	}
	return found
}

// MatchProficiencies returns the names of the proficiency patterns found.
func MatchProficiencies(normalized string) []string {
	var found []string
	for _, p := range ProficiencyPatterns {
		if p.Pattern.MatchString(normalized) {
			found = append(found, p.Name)
		}
	}
	return found
}

// CertificateTokens is the fixed list of recognized certifications.
var CertificateTokens = []string{
	"aws", "azure", "gcp", "pmp", "scrum", "cka", "ckad", "ccna", "ccnp",
	"cissp", "itil", "ocp", "comptia", "istqb", "prince2", "togaf", "cfa", "acca",
}

// DetectCertificates returns the certificate tokens present in the text.
func DetectCertificates(normalized string) []string {
	terms := NewTermSet(normalized)
	var found []string
	for _, token := range CertificateTokens {
		if terms.Has(token) {
			found = append(found, token)
		}
	}
	return found
}

// DomainTokens mark industry experience worth a recency boost.
var DomainTokens = []string{
	"fintech", "ecommerce", "e-commerce", "banking", "payment", "payments",
	"logistics", "health", "healthcare", "retail",
}

// HasDomainToken reports whether any domain token appears in the text.
func HasDomainToken(normalized string) bool {
	terms := NewTermSet(normalized)
	for _, token := range DomainTokens {
		if terms.Has(token) {
			return true
		}
	}
	return false
}
