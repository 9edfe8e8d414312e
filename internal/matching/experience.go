package matching

import (
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/parsing"
)

// neutralScore is returned whenever a matcher cannot extract a signal.
// Absence of a signal is not evidence of mismatch, so unstated requirements
// never penalize the candidate.
const neutralScore = 1.0

// ExperienceScore compares the candidate's apparent years of experience
// against the role's requirement. Meeting or exceeding the requirement
// scores 1.0; each year of shortfall degrades the score linearly, reaching
// 0 at maxShortfallYears. Fails soft to the neutral score when either side
// carries no years figure.
func ExperienceScore(candidateText, roleText string, cfg config.ScoringConfig) float64 {
	required, ok := parsing.RequiredYears(roleText)
	if !ok {
		return neutralScore
	}

	actual, ok := parsing.CandidateYears(candidateText)
	if !ok {
		return neutralScore
	}

	if actual >= required {
		return 1.0
	}

	shortfall := required - actual
	maxShortfall := cfg.MaxExperienceShortfallYears
	if maxShortfall <= 0 {
		maxShortfall = config.DefaultMaxExperienceShortfallYears
	}

	score := 1.0 - shortfall/maxShortfall
	if score < 0 {
		score = 0
	}
	return score
}
