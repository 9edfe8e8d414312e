package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Match category thresholds on the composite score
const (
	excellentThreshold = 0.75
	goodThreshold      = 0.60
	moderateThreshold  = 0.45
)

// Combine merges the four sub-scores into a composite score with a full
// breakdown. Order of operations: base weighted sum, then the cross-domain
// bonus, then a final clamp to [0,1]. The missing-skill penalty and the
// semantic boost are already folded into their sub-scores before this point;
// they appear here only as recorded adjustments.
//
// The caller is responsible for validating cfg first; Combine assumes the
// component weights sum to 1.0.
func Combine(skillMatch types.SkillMatch, semantic SemanticResult, experienceScore, educationScore float64, cfg config.ScoringConfig) types.ScoreBreakdown {
	technical := skillMatch.KeywordScore
	w := cfg.ComponentWeights

	composite := w.TechnicalSkill*technical +
		w.Semantic*semantic.Score +
		w.Experience*experienceScore +
		w.Education*educationScore

	adjustments := []types.Adjustment{semantic.BoostAdjustment()}
	if skillMatch.PenaltyApplied {
		adjustments = append(adjustments, types.Adjustment{
			Reason: types.AdjustmentMissingSkillPenalty,
			Delta:  -cfg.MissingSkillPenaltyAmount,
		})
	}

	// Strong conceptual fit with weak literal keyword overlap is the
	// signature of a career transition, not a poor match.
	if semantic.Score > cfg.CrossDomainSemanticThreshold && technical < cfg.CrossDomainKeywordThreshold {
		composite += cfg.CrossDomainBonus
		adjustments = append(adjustments, types.Adjustment{
			Reason: types.AdjustmentCrossDomainBonus,
			Delta:  cfg.CrossDomainBonus,
		})
	}

	if composite < 0 {
		composite = 0
	}
	if composite > 1 {
		composite = 1
	}

	category, recommendation := categorize(composite)

	return types.ScoreBreakdown{
		TechnicalSkill:   technical,
		Semantic:         semantic.Score,
		Experience:       experienceScore,
		Education:        educationScore,
		Adjustments:      adjustments,
		MatchedSkills:    skillMatch.Matched,
		MissingRequired:  skillMatch.MissingRequired,
		MissingPreferred: skillMatch.MissingPreferred,
		TopChunks:        semantic.TopMatches,
		CompositeScore:   composite,
		Category:         category,
		Recommendation:   recommendation,
	}
}

// categorize buckets a composite score into a recruiter-facing tier
func categorize(composite float64) (types.MatchCategory, string) {
	switch {
	case composite >= excellentThreshold:
		return types.CategoryExcellent, "Strong candidate - Recommend immediate interview"
	case composite >= goodThreshold:
		return types.CategoryGood, "Solid candidate - Review in detail"
	case composite >= moderateThreshold:
		return types.CategoryModerate, "Some gaps exist - Consider with reservations"
	default:
		return types.CategoryLow, "Significant gaps - May not be suitable"
	}
}

// Suggestions derives actionable, deterministic improvement suggestions from
// the matched and missing skill lists.
func Suggestions(skillMatch types.SkillMatch) []string {
	var suggestions []string

	if len(skillMatch.MissingRequired) > 0 {
		top := skillMatch.MissingRequired
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Add these key skills to your resume: %s", strings.Join(top, ", ")))
	}

	if len(skillMatch.Matched) < 5 {
		suggestions = append(suggestions,
			"Expand your technical skills section with more specific tools and frameworks")
	}

	missing := make(map[string]bool, len(skillMatch.MissingRequired))
	for _, skill := range skillMatch.MissingRequired {
		missing[skill] = true
	}
	if missing["python"] {
		suggestions = append(suggestions,
			"Python is required - add Python projects to your experience section")
	}
	if missing["aws"] || missing["azure"] || missing["gcp"] {
		suggestions = append(suggestions,
			"Consider getting cloud platform experience (AWS/Azure/GCP)")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Strong skill match! Consider highlighting achievements and impact in your experience")
	}

	return suggestions
}
