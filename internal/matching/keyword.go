// Package matching implements the hybrid matching signals: keyword overlap
// against the skill vocabulary, semantic similarity over chunk embeddings,
// auxiliary experience and education matchers, and the combiner that folds
// them into one explainable composite score.
package matching

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Weights for the required and preferred halves of the keyword score.
// A role's hard requirements dominate; nice-to-haves refine.
const (
	requiredWeight  = 0.8
	preferredWeight = 0.2
)

// ExtractSkills scans text for vocabulary skills and classifies each as
// required or preferred using the section state its first mention falls
// under. Skills mentioned under both kinds of section classify as required.
// For candidate documents, which rarely carry requirement headings, nearly
// everything lands in Required via the unclassified default; Match only uses
// the union for the candidate side, so that is harmless.
func ExtractSkills(text string, v *vocab.Vocabulary) types.SkillSet {
	requiredSet := make(map[string]bool)
	preferredSet := make(map[string]bool)

	for _, segment := range parsing.SegmentSections(text) {
		for _, skill := range v.FindAll(segment.Text) {
			if segment.State == parsing.SectionPreferred {
				preferredSet[skill] = true
			} else {
				requiredSet[skill] = true
			}
		}
	}

	// A skill belongs to exactly one set; required wins
	for skill := range requiredSet {
		delete(preferredSet, skill)
	}

	return types.SkillSet{
		Required:  sortedKeys(requiredSet),
		Preferred: sortedKeys(preferredSet),
	}
}

// Match compares a candidate document against a role document's skill
// requirements and produces the keyword sub-score with full matched/missing
// detail. The matched and missing lists feed explanation generation and are
// as much a product of this function as the score itself.
func Match(candidateText, roleText string, v *vocab.Vocabulary, cfg config.ScoringConfig) types.SkillMatch {
	roleSkills := ExtractSkills(roleText, v)

	candidateSet := make(map[string]bool)
	for _, skill := range v.FindAll(candidateText) {
		candidateSet[skill] = true
	}

	var matched, missingRequired, missingPreferred []string
	requiredMatched := 0
	for _, skill := range roleSkills.Required {
		if candidateSet[skill] {
			matched = append(matched, skill)
			requiredMatched++
		} else {
			missingRequired = append(missingRequired, skill)
		}
	}
	preferredMatched := 0
	for _, skill := range roleSkills.Preferred {
		if candidateSet[skill] {
			matched = append(matched, skill)
			preferredMatched++
		} else {
			missingPreferred = append(missingPreferred, skill)
		}
	}
	sort.Strings(matched)

	// Each ratio counts as 1.0 when its denominator is zero: a role with no
	// preferred skills must not penalize the candidate.
	requiredRatio := 1.0
	if len(roleSkills.Required) > 0 {
		requiredRatio = float64(requiredMatched) / float64(len(roleSkills.Required))
	}
	preferredRatio := 1.0
	if len(roleSkills.Preferred) > 0 {
		preferredRatio = float64(preferredMatched) / float64(len(roleSkills.Preferred))
	}

	score := requiredWeight*requiredRatio + preferredWeight*preferredRatio

	penaltyApplied := false
	if len(missingRequired) >= cfg.MissingSkillPenaltyThreshold {
		score -= cfg.MissingSkillPenaltyAmount
		penaltyApplied = true
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return types.SkillMatch{
		Matched:          matched,
		MissingRequired:  missingRequired,
		MissingPreferred: missingPreferred,
		KeywordScore:     score,
		PenaltyApplied:   penaltyApplied,
	}
}

// sortedKeys returns map keys in sorted order for deterministic output
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
