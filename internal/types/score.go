// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Adjustment reason tags. Every boost, penalty, or bonus applied during
// scoring is recorded under one of these so the composite score can be
// reproduced from the breakdown alone.
const (
	// AdjustmentSemanticBoost is the calibration boost applied to raw cosine similarity
	AdjustmentSemanticBoost = "semantic_boost"
	// AdjustmentMissingSkillPenalty is the penalty for missing too many required skills
	AdjustmentMissingSkillPenalty = "missing_skill_penalty"
	// AdjustmentCrossDomainBonus rewards strong conceptual fit despite weak keyword overlap
	AdjustmentCrossDomainBonus = "cross_domain_bonus"
)

// Adjustment records a single signed score delta and why it was applied
type Adjustment struct {
	Reason string  `json:"reason"`
	Delta  float64 `json:"delta"`
}

// MatchCategory buckets a composite score into a recruiter-facing tier
type MatchCategory string

// Match category constants, ordered from best to worst
const (
	CategoryExcellent MatchCategory = "Excellent Match"
	CategoryGood      MatchCategory = "Good Match"
	CategoryModerate  MatchCategory = "Moderate Match"
	CategoryLow       MatchCategory = "Low Match"
)

// ScoreBreakdown is the full, inspectable decomposition of a composite score.
// The composite is always reproducible from the four sub-scores plus the
// listed adjustments; the engine never returns a bare number without it.
type ScoreBreakdown struct {
	TechnicalSkill float64 `json:"technical_skill"`
	Semantic       float64 `json:"semantic"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`

	Adjustments []Adjustment `json:"adjustments"`

	MatchedSkills    []string     `json:"matched_skills"`
	MissingRequired  []string     `json:"missing_required"`
	MissingPreferred []string     `json:"missing_preferred"`
	TopChunks        []ChunkMatch `json:"top_chunks,omitempty"`

	CompositeScore float64       `json:"composite_score"`
	Category       MatchCategory `json:"category"`
	Recommendation string        `json:"recommendation"`
}

// MatchResult is the sole output of a scoring call, immutable once produced.
// Explanation is optional prose from the explanation provider; scoring never
// depends on it being present.
type MatchResult struct {
	Breakdown      ScoreBreakdown `json:"breakdown"`
	CompositeScore float64        `json:"composite_score"`
	Explanation    string         `json:"explanation,omitempty"`
	Suggestions    []string       `json:"suggestions,omitempty"`
}
