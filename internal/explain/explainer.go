// Package explain turns a score breakdown into human-readable prose via the
// narrative-explanation provider. Scoring never depends on explanation
// succeeding: when the provider is unavailable or fails, callers fall back
// to the deterministic template in Fallback.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// maxRoleTextChars bounds how much role text goes into the prompt
	maxRoleTextChars = 1000
	// maxPromptChunks bounds how many evidence chunks go into the prompt
	maxPromptChunks = 3
	// maxPromptSkills bounds how many skills are listed per prompt line
	maxPromptSkills = 10
)

// Explainer produces free-text prose for a score breakdown. The core does
// not parse or validate the returned text.
type Explainer interface {
	Explain(ctx context.Context, breakdown types.ScoreBreakdown, roleText string) (string, error)
}

// LLMExplainer implements Explainer on top of an llm.Client
type LLMExplainer struct {
	client llm.Client
}

// NewLLMExplainer creates an explainer backed by the given LLM client
func NewLLMExplainer(client llm.Client) *LLMExplainer {
	return &LLMExplainer{client: client}
}

// Explain builds a recruiter-style analysis prompt from the breakdown and
// asks the provider for prose.
func (e *LLMExplainer) Explain(ctx context.Context, breakdown types.ScoreBreakdown, roleText string) (string, error) {
	template := prompts.MustGet("explanation.json", "match-explanation")

	prompt := prompts.Format(template, map[string]string{
		"RoleText":       truncateText(roleText, maxRoleTextChars),
		"TopChunks":      formatChunks(breakdown.TopChunks),
		"CompositeScore": fmt.Sprintf("%.0f%%", breakdown.CompositeScore*100),
		"TechnicalScore": fmt.Sprintf("%.0f%%", breakdown.TechnicalSkill*100),
		"SemanticScore":  fmt.Sprintf("%.0f%%", breakdown.Semantic*100),
		"MatchedSkills":  formatSkills(breakdown.MatchedSkills),
		"MissingSkills":  formatSkills(breakdown.MissingRequired),
	})

	text, err := e.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("explanation generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Fallback produces a deterministic, template-based explanation from the
// breakdown alone. Used when no provider is configured or the provider
// call fails, so a match result always carries some prose.
func Fallback(breakdown types.ScoreBreakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Overall match: %.0f%% - %s.\n", breakdown.CompositeScore*100, breakdown.Category)
	fmt.Fprintf(&sb, "Found %d matching technical skills; %d required skills are missing.\n",
		len(breakdown.MatchedSkills), len(breakdown.MissingRequired))
	fmt.Fprintf(&sb, "Semantic fit %.0f%%, technical skills coverage %.0f%%, experience %.0f%%, education %.0f%%.\n",
		breakdown.Semantic*100, breakdown.TechnicalSkill*100,
		breakdown.Experience*100, breakdown.Education*100)

	if len(breakdown.MissingRequired) > 0 {
		fmt.Fprintf(&sb, "Missing required skills: %s.\n", formatSkills(breakdown.MissingRequired))
	}
	fmt.Fprintf(&sb, "Recommendation: %s.", breakdown.Recommendation)

	return sb.String()
}

// formatChunks joins the top evidence chunks for the prompt
func formatChunks(chunks []types.ChunkMatch) string {
	if len(chunks) == 0 {
		return "None available"
	}
	if len(chunks) > maxPromptChunks {
		chunks = chunks[:maxPromptChunks]
	}

	parts := make([]string, len(chunks))
	for i, match := range chunks {
		parts[i] = match.Chunk.Text
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// formatSkills joins up to maxPromptSkills skill names
func formatSkills(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	if len(skills) > maxPromptSkills {
		skills = skills[:maxPromptSkills]
	}
	return strings.Join(skills, ", ")
}

// truncateText truncates text to maxLen characters
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
