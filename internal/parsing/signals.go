package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPattern matches years-of-experience figures such as "5 years",
// "3-5 years", "7+ yrs". Ranges capture both bounds.
var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:\s*(?:-|–|to)\s*(\d{1,2}))?\s*\+?\s*(?:years?|yrs?)\b`)

// RequiredYears extracts the years-of-experience requirement from role text.
// For a range ("3-5 years") the lower bound is the requirement. Returns
// ok=false when the text carries no such figure.
func RequiredYears(text string) (float64, bool) {
	match := yearsPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return float64(years), true
}

// CandidateYears extracts a candidate's apparent years of experience: the
// largest figure mentioned anywhere in the text. Returns ok=false when no
// figure is present.
func CandidateYears(text string) (float64, bool) {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0
	for _, match := range matches {
		for _, group := range match[1:] {
			if group == "" {
				continue
			}
			years, err := strconv.Atoi(group)
			if err != nil {
				continue
			}
			if years > best {
				best = years
			}
		}
	}
	return float64(best), true
}

// Degree ranks for the ordinal education ladder
const (
	DegreeAssociate = 1
	DegreeBachelor  = 2
	DegreeMaster    = 3
	DegreeDoctorate = 4
)

// degreeAliases maps surface forms to degree ranks. Bare two-letter forms
// like "ms" are deliberately absent: they collide with product names
// ("MS SQL Server") far more often than they signal a degree.
var degreeAliases = []struct {
	pattern *regexp.Regexp
	rank    int
}{
	{regexp.MustCompile(`\b(?:phd|ph\.d|doctorate|doctoral)\b`), DegreeDoctorate},
	{regexp.MustCompile(`\b(?:master|masters|master's|m\.s|msc|m\.sc|mba)\b`), DegreeMaster},
	{regexp.MustCompile(`\b(?:bachelor|bachelors|bachelor's|b\.s|bsc|b\.sc|b\.a|bs|ba)\b`), DegreeBachelor},
	{regexp.MustCompile(`\b(?:associate|associates|associate's|a\.s)\b`), DegreeAssociate},
}

// HighestDegree returns the highest degree rank mentioned in candidate text.
// Returns ok=false when no degree is mentioned.
func HighestDegree(text string) (int, bool) {
	lower := strings.ToLower(text)

	best := 0
	for _, alias := range degreeAliases {
		if alias.rank > best && alias.pattern.MatchString(lower) {
			best = alias.rank
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// MinimumDegree returns the lowest degree rank mentioned in role text.
// A posting listing "Bachelor's or Master's" requires a bachelor's, so the
// minimum mentioned rank is the requirement. Returns ok=false when the role
// states no degree requirement.
func MinimumDegree(text string) (int, bool) {
	lower := strings.ToLower(text)

	lowest := 0
	for _, alias := range degreeAliases {
		if alias.pattern.MatchString(lower) {
			if lowest == 0 || alias.rank < lowest {
				lowest = alias.rank
			}
		}
	}
	if lowest == 0 {
		return 0, false
	}
	return lowest, true
}
