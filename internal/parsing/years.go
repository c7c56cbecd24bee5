package parsing

import (
	"regexp"
	"strconv"

	"github.com/jonathan/jd-matcher/internal/types"
)

var (
	yearsRangeRe  = regexp.MustCompile(`\b(\d{1,2})\s*(?:-|to|den)\s*(\d{1,2})\s*\+?\s*(?:years?|yrs?|nam|y)\b`)
	yearsSingleRe = regexp.MustCompile(`\b(\d{1,2})\s*\+?\s*(?:years?|yrs?|nam|y)\b`)
)

// DetectYears collects every years-of-experience figure in normalized text.
// Ranges ("3-5 years") contribute both ends, single statements ("5 years",
// "3y", "4 nam") contribute their value. Any is the largest figure.
func DetectYears(normalized string) types.YearsRange {
	var values []int

	for _, m := range yearsRangeRe.FindAllStringSubmatch(normalized, -1) {
		values = appendInts(values, m[1], m[2])
	}
	for _, m := range yearsSingleRe.FindAllStringSubmatch(normalized, -1) {
		values = appendInts(values, m[1])
	}

	if len(values) == 0 {
		return types.YearsRange{}
	}

	r := types.YearsRange{Min: values[0], Max: values[0], Found: true}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	r.Any = r.Max

	return r
}

func appendInts(values []int, raw ...string) []int {
	for _, s := range raw {
		if v, err := strconv.Atoi(s); err == nil {
			values = append(values, v)
		}
	}
	return values
}
