package explain

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records the prompt and returns a canned response
type stubClient struct {
	prompt   string
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func sampleBreakdown() types.ScoreBreakdown {
	return types.ScoreBreakdown{
		TechnicalSkill:  0.6,
		Semantic:        0.72,
		Experience:      1.0,
		Education:       0.5,
		MatchedSkills:   []string{"go", "python"},
		MissingRequired: []string{"kubernetes"},
		TopChunks: []types.ChunkMatch{
			{Chunk: types.Chunk{Text: "Led the data platform team"}, Similarity: 0.4},
		},
		CompositeScore: 0.71,
		Category:       types.CategoryGood,
		Recommendation: "Solid candidate - Review in detail",
	}
}

func TestExplain_BuildsPromptFromBreakdown(t *testing.T) {
	client := &stubClient{response: "  Looks like a good fit.  "}
	explainer := NewLLMExplainer(client)

	text, err := explainer.Explain(context.Background(), sampleBreakdown(), "Senior Go engineer role")
	require.NoError(t, err)

	assert.Equal(t, "Looks like a good fit.", text)
	assert.Contains(t, client.prompt, "Senior Go engineer role")
	assert.Contains(t, client.prompt, "go, python")
	assert.Contains(t, client.prompt, "kubernetes")
	assert.Contains(t, client.prompt, "Led the data platform team")
	assert.Contains(t, client.prompt, "71%")
}

func TestExplain_PropagatesProviderError(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("quota exceeded")}
	explainer := NewLLMExplainer(client)

	_, err := explainer.Explain(context.Background(), sampleBreakdown(), "role")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestFallback_DeterministicProse(t *testing.T) {
	breakdown := sampleBreakdown()

	first := Fallback(breakdown)
	second := Fallback(breakdown)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "71%")
	assert.Contains(t, first, "Good Match")
	assert.Contains(t, first, "kubernetes")
	assert.Contains(t, first, "Solid candidate")
}

func TestFallback_NoMissingSkills(t *testing.T) {
	breakdown := sampleBreakdown()
	breakdown.MissingRequired = nil

	text := Fallback(breakdown)
	assert.NotContains(t, text, "Missing required skills")
}

func TestExplain_TruncatesLongRoleText(t *testing.T) {
	client := &stubClient{response: "ok"}
	explainer := NewLLMExplainer(client)

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}

	_, err := explainer.Explain(context.Background(), sampleBreakdown(), string(long))
	require.NoError(t, err)
	assert.Less(t, len(client.prompt), 3000)
}
