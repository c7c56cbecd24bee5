package ranking

import (
	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// JobProfile holds every signal extracted from one JD. Build it once and
// score any number of CVs against it; it is read-only after construction.
type JobProfile struct {
	Document     parsing.Document
	Years        types.YearsRange
	Seniority    types.SeniorityLevel
	Skills       types.SkillSets
	Categories   []string // skill buckets touched by Skills
	Degree       types.DegreeLevel
	Languages    []string
	Certificates []string
}

// NewJobProfile parses raw JD text.
func NewJobProfile(jdText string) *JobProfile {
	return ProfileFromDocument(parsing.NewDocument(jdText))
}

// ProfileFromDocument extracts the JD signals of an already prepared document.
func ProfileFromDocument(jd parsing.Document) *JobProfile {
	p := &JobProfile{
		Document:     jd,
		Years:        parsing.DetectYears(jd.Normalized),
		Seniority:    parsing.DetectSeniority(jd.Normalized),
		Skills:       parsing.ExtractMustHaveSkills(jd.Folded),
		Degree:       parsing.RequestedDegree(jd.Normalized),
		Languages:    parsing.DetectLanguages(jd.Normalized),
		Certificates: parsing.DetectCertificates(jd.Normalized),
	}

	all := make([]string, 0, len(p.Skills.Must)+len(p.Skills.Nice))
	all = append(all, p.Skills.Must...)
	all = append(all, p.Skills.Nice...)
	p.Categories = parsing.RequiredCategories(all)

	return p
}
