package types

// YearsRange is the years-of-experience signal found in a text.
// Found is false when the text had no years statement at all; callers must
// treat that as "no signal", not as zero years.
type YearsRange struct {
	Min   int  `json:"min,omitempty"`
	Max   int  `json:"max,omitempty"`
	Any   int  `json:"any,omitempty"`
	Found bool `json:"found"`
}

// SkillSets holds the must-have and nice-to-have skill tokens of a JD.
type SkillSets struct {
	Must []string `json:"must"`
	Nice []string `json:"nice"`
}

// DegreeLevel is an ordinal degree rank. DegreeNone means no degree found.
type DegreeLevel int

// Degree hierarchy, low to high
const (
	DegreeNone DegreeLevel = iota
	DegreeHighSchool
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreePhD
)

var degreeNames = map[DegreeLevel]string{
	DegreeNone:       "none",
	DegreeHighSchool: "highschool",
	DegreeAssociate:  "associate",
	DegreeBachelor:   "bachelor",
	DegreeMaster:     "master",
	DegreePhD:        "phd",
}

func (d DegreeLevel) String() string {
	if name, ok := degreeNames[d]; ok {
		return name
	}
	return "unknown"
}

// SeniorityLevel is an ordinal seniority rank. SeniorityNone means no level found.
type SeniorityLevel int

// Seniority ladder, low to high
const (
	SeniorityNone SeniorityLevel = iota
	SeniorityIntern
	SeniorityJunior
	SeniorityMid
	SenioritySenior
	SeniorityLead
	SeniorityPrincipal
)

var seniorityNames = map[SeniorityLevel]string{
	SeniorityNone:      "none",
	SeniorityIntern:    "intern",
	SeniorityJunior:    "junior",
	SeniorityMid:       "mid",
	SenioritySenior:    "senior",
	SeniorityLead:      "lead",
	SeniorityPrincipal: "principal",
}

func (s SeniorityLevel) String() string {
	if name, ok := seniorityNames[s]; ok {
		return name
	}
	return "unknown"
}
