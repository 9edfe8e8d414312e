package matching

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_ClassifiesBySections(t *testing.T) {
	roleText := "We build data platforms.\n" +
		"Requirements:\n" +
		"- Python and SQL\n" +
		"Nice to have:\n" +
		"- Kubernetes\n"

	skills := ExtractSkills(roleText, vocab.Default())

	assert.ElementsMatch(t, []string{"python", "sql"}, skills.Required)
	assert.ElementsMatch(t, []string{"kubernetes"}, skills.Preferred)
}

func TestExtractSkills_UnclassifiedDefaultsToRequired(t *testing.T) {
	skills := ExtractSkills("Looking for a Python engineer with Docker knowledge", vocab.Default())

	assert.Contains(t, skills.Required, "python")
	assert.Contains(t, skills.Required, "docker")
	assert.Empty(t, skills.Preferred)
}

func TestExtractSkills_SkillInBothSectionsStaysRequired(t *testing.T) {
	roleText := "Requirements:\n- Python\nNice to have:\n- Advanced Python\n"

	skills := ExtractSkills(roleText, vocab.Default())

	assert.Contains(t, skills.Required, "python")
	assert.NotContains(t, skills.Preferred, "python")
}

func TestMatch_KeywordSymmetry(t *testing.T) {
	// Role requires {python, sql}; candidate mentions only python.
	roleText := "Requirements:\n- Python\n- SQL\n"
	candidateText := "Experienced Python developer"

	result := Match(candidateText, roleText, vocab.Default(), config.DefaultScoringConfig())

	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, []string{"sql"}, result.MissingRequired)
	assert.Empty(t, result.MissingPreferred)
	// 0.8 * (1/2) + 0.2 * 1.0 (no preferred listed)
	assert.InDelta(t, 0.6, result.KeywordScore, 1e-9)
	assert.False(t, result.PenaltyApplied, "1 missing skill is below the penalty threshold")
}

func TestMatch_PenaltyTriggersAtThreeMissing(t *testing.T) {
	roleText := "Requirements:\n- Python\n- SQL\n- Docker\n- Kubernetes\n"
	candidateText := "I know Python well"

	result := Match(candidateText, roleText, vocab.Default(), config.DefaultScoringConfig())

	require.Len(t, result.MissingRequired, 3)
	assert.True(t, result.PenaltyApplied)
	// 0.8 * (1/4) + 0.2 * 1.0 = 0.40, minus the 0.15 penalty
	assert.InDelta(t, 0.25, result.KeywordScore, 1e-9)
}

func TestMatch_PenaltyFloorsAtZero(t *testing.T) {
	roleText := "Requirements:\n- Python\n- SQL\n- Docker\n- Kubernetes\n- Terraform\n"
	candidateText := "Professional juggler"

	cfg := config.DefaultScoringConfig()
	cfg.MissingSkillPenaltyAmount = 0.5

	result := Match(candidateText, roleText, vocab.Default(), cfg)

	assert.True(t, result.PenaltyApplied)
	// 0.8*0 + 0.2*1.0 = 0.2, minus 0.5 → floored at 0
	assert.Equal(t, 0.0, result.KeywordScore)
}

func TestMatch_NoSkillsInRoleIsNeutral(t *testing.T) {
	result := Match("Python developer", "We value kindness and hustle", vocab.Default(), config.DefaultScoringConfig())

	// Both ratios count as 1.0 when their denominators are zero
	assert.InDelta(t, 1.0, result.KeywordScore, 1e-9)
	assert.Empty(t, result.MissingRequired)
	assert.False(t, result.PenaltyApplied)
}

func TestMatch_PreferredOnlyAffectsItsShare(t *testing.T) {
	roleText := "Requirements:\n- Python\nNice to have:\n- Kubernetes\n- Terraform\n"
	candidateText := "Python and Kubernetes experience"

	result := Match(candidateText, roleText, vocab.Default(), config.DefaultScoringConfig())

	// 0.8 * 1.0 + 0.2 * (1/2)
	assert.InDelta(t, 0.9, result.KeywordScore, 1e-9)
	assert.Equal(t, []string{"terraform"}, result.MissingPreferred)
}

func TestMatch_ScoreAlwaysWithinBounds(t *testing.T) {
	inputs := []string{"", "python", "!!! ??? ...", "a"}
	for _, candidate := range inputs {
		for _, role := range inputs {
			result := Match(candidate, role, vocab.Default(), config.DefaultScoringConfig())
			assert.GreaterOrEqual(t, result.KeywordScore, 0.0)
			assert.LessOrEqual(t, result.KeywordScore, 1.0)
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	roleText := "Requirements: Python, SQL, Docker\nNice to have: Kubernetes, AWS"
	candidateText := "Python, Docker, AWS"

	first := Match(candidateText, roleText, vocab.Default(), config.DefaultScoringConfig())
	second := Match(candidateText, roleText, vocab.Default(), config.DefaultScoringConfig())

	assert.Equal(t, first, second)
}
