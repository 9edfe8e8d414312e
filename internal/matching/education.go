package matching

import "github.com/jonathan/resume-matcher/internal/parsing"

// oneTierBelowCredit is the partial credit for a candidate exactly one
// degree tier below the role's requirement
const oneTierBelowCredit = 0.5

// EducationScore compares the candidate's highest degree against the role's
// minimum degree requirement on the ordinal ladder associate < bachelor <
// master < doctorate. Exact match or higher scores 1.0, one tier below earns
// partial credit, further below scores 0. Fails soft to the neutral score
// when either side states no degree.
func EducationScore(candidateText, roleText string) float64 {
	required, ok := parsing.MinimumDegree(roleText)
	if !ok {
		return neutralScore
	}

	actual, ok := parsing.HighestDegree(candidateText)
	if !ok {
		return neutralScore
	}

	switch {
	case actual >= required:
		return 1.0
	case actual == required-1:
		return oneTierBelowCredit
	default:
		return 0.0
	}
}
