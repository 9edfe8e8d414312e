package config

import (
	"fmt"
	"math"
)

// Default calibration constants. These are empirically chosen, not derived;
// every one of them can be overridden through ScoringConfig.
const (
	DefaultChunkWindowWords  = 200
	DefaultChunkOverlapWords = 75

	DefaultSemanticBoostFactor = 1.8

	DefaultTechnicalSkillWeight = 0.40
	DefaultSemanticWeight       = 0.30
	DefaultExperienceWeight     = 0.20
	DefaultEducationWeight      = 0.10

	DefaultMissingSkillPenaltyThreshold = 3
	DefaultMissingSkillPenaltyAmount    = 0.15

	DefaultCrossDomainSemanticThreshold = 0.4
	DefaultCrossDomainKeywordThreshold  = 0.5
	DefaultCrossDomainBonus             = 0.05

	DefaultMaxExperienceShortfallYears = 4
)

// weightSumTolerance absorbs float64 representation error when checking
// that the component weights sum to exactly 1.0.
const weightSumTolerance = 1e-9

// ComponentWeights holds the relative weight of each sub-score in the
// composite. The four weights must sum to exactly 1.0.
type ComponentWeights struct {
	TechnicalSkill float64 `json:"technical_skill"`
	Semantic       float64 `json:"semantic"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
}

// Sum returns the total of the four component weights
func (w ComponentWeights) Sum() float64 {
	return w.TechnicalSkill + w.Semantic + w.Experience + w.Education
}

// ScoringConfig enumerates every tunable constant used by the scoring engine.
// Zero values are not meaningful; construct with DefaultScoringConfig and
// override individual fields.
type ScoringConfig struct {
	ChunkWindowWords  int `json:"chunk_window_words"`
	ChunkOverlapWords int `json:"chunk_overlap_words"`

	SemanticBoostFactor float64 `json:"semantic_boost_factor"`

	ComponentWeights ComponentWeights `json:"component_weights"`

	MissingSkillPenaltyThreshold int     `json:"missing_skill_penalty_threshold"`
	MissingSkillPenaltyAmount    float64 `json:"missing_skill_penalty_amount"`

	CrossDomainSemanticThreshold float64 `json:"cross_domain_semantic_threshold"`
	CrossDomainKeywordThreshold  float64 `json:"cross_domain_keyword_threshold"`
	CrossDomainBonus             float64 `json:"cross_domain_bonus"`

	MaxExperienceShortfallYears float64 `json:"max_experience_shortfall_years"`
}

// DefaultScoringConfig returns a ScoringConfig populated with the default
// calibration constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ChunkWindowWords:    DefaultChunkWindowWords,
		ChunkOverlapWords:   DefaultChunkOverlapWords,
		SemanticBoostFactor: DefaultSemanticBoostFactor,
		ComponentWeights: ComponentWeights{
			TechnicalSkill: DefaultTechnicalSkillWeight,
			Semantic:       DefaultSemanticWeight,
			Experience:     DefaultExperienceWeight,
			Education:      DefaultEducationWeight,
		},
		MissingSkillPenaltyThreshold: DefaultMissingSkillPenaltyThreshold,
		MissingSkillPenaltyAmount:    DefaultMissingSkillPenaltyAmount,
		CrossDomainSemanticThreshold: DefaultCrossDomainSemanticThreshold,
		CrossDomainKeywordThreshold:  DefaultCrossDomainKeywordThreshold,
		CrossDomainBonus:             DefaultCrossDomainBonus,
		MaxExperienceShortfallYears:  DefaultMaxExperienceShortfallYears,
	}
}

// Validate checks the scoring configuration invariants. It must be called
// before any scoring occurs; a ConfigError here is fatal.
func (c ScoringConfig) Validate() error {
	if c.ChunkWindowWords <= 0 {
		return NewConfigError("chunk_window_words", "must be positive")
	}
	if c.ChunkOverlapWords < 0 {
		return NewConfigError("chunk_overlap_words", "must be non-negative")
	}
	if c.ChunkOverlapWords >= c.ChunkWindowWords {
		return NewConfigError("chunk_overlap_words", fmt.Sprintf(
			"overlap (%d) must be smaller than window size (%d)",
			c.ChunkOverlapWords, c.ChunkWindowWords))
	}

	if c.SemanticBoostFactor <= 0 {
		return NewConfigError("semantic_boost_factor", "must be positive")
	}

	w := c.ComponentWeights
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"component_weights.technical_skill", w.TechnicalSkill},
		{"component_weights.semantic", w.Semantic},
		{"component_weights.experience", w.Experience},
		{"component_weights.education", w.Education},
	} {
		if check.value < 0 || check.value > 1 {
			return NewConfigError(check.name, "must be within [0,1]")
		}
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return NewConfigError("component_weights", fmt.Sprintf(
			"weights must sum to 1.0, got %.4f", w.Sum()))
	}

	if c.MissingSkillPenaltyThreshold < 1 {
		return NewConfigError("missing_skill_penalty_threshold", "must be at least 1")
	}
	if c.MissingSkillPenaltyAmount < 0 || c.MissingSkillPenaltyAmount > 1 {
		return NewConfigError("missing_skill_penalty_amount", "must be within [0,1]")
	}

	if c.CrossDomainSemanticThreshold < 0 || c.CrossDomainSemanticThreshold > 1 {
		return NewConfigError("cross_domain_semantic_threshold", "must be within [0,1]")
	}
	if c.CrossDomainKeywordThreshold < 0 || c.CrossDomainKeywordThreshold > 1 {
		return NewConfigError("cross_domain_keyword_threshold", "must be within [0,1]")
	}
	if c.CrossDomainBonus < 0 || c.CrossDomainBonus > 1 {
		return NewConfigError("cross_domain_bonus", "must be within [0,1]")
	}

	if c.MaxExperienceShortfallYears <= 0 {
		return NewConfigError("max_experience_shortfall_years", "must be positive")
	}

	return nil
}
