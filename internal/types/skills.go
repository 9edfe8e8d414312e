// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillVocabulary maps canonical skill names to their surface-form aliases.
// It is loaded once at startup and treated as read-only afterwards, so it is
// safe to share across concurrent scoring calls.
type SkillVocabulary struct {
	Skills map[string][]string `json:"skills"`
}

// Canonical returns the canonical skill names in map order. The returned
// slice is a fresh copy; mutating it does not affect the vocabulary.
func (v *SkillVocabulary) Canonical() []string {
	names := make([]string, 0, len(v.Skills))
	for name := range v.Skills {
		names = append(names, name)
	}
	return names
}

// SkillSet holds the canonical skills extracted from a single document,
// split by how mandatory the role text marks them. A skill belongs to
// exactly one of the two sets, never both.
type SkillSet struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// SkillMatch is the structured result of matching a candidate document
// against a role document's skill requirements. The matched and missing
// lists are first-class outputs consumed by explanation generation.
type SkillMatch struct {
	Matched          []string `json:"matched"`
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`
	KeywordScore     float64  `json:"keyword_score"`
	PenaltyApplied   bool     `json:"penalty_applied"`
}
