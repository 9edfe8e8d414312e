package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// keywordDims are the axes of the fake embedding space. Texts sharing
// keywords get high cosine similarity, disjoint texts get zero.
var keywordDims = []string{"python", "django", "backend", "kitchen", "cooking", "pastry"}

// fakeEmbedder produces deterministic vectors from keyword counts
type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		vec := make([]float32, len(keywordDims))
		for d, keyword := range keywordDims {
			vec[d] = float32(strings.Count(lower, keyword))
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// failingEmbedder always errors
type failingEmbedder struct{ err error }

func (f *failingEmbedder) Embed(context.Context, []string) ([][]float32, error) {
	return nil, f.err
}

// failingExplainer always errors
type failingExplainer struct{}

func (failingExplainer) Explain(context.Context, types.ScoreBreakdown, string) (string, error) {
	return "", fmt.Errorf("explanation provider down")
}

const candidateFixture = `
Experienced backend engineer with 6 years of experience building Python
services. Designed Django APIs and PostgreSQL schemas for a payments
platform. Bachelor of Science in Computer Science.
`

const roleFixture = `
Requirements:
- 5+ years of backend experience
- Python and Django
- PostgreSQL
- Bachelor's degree in Computer Science

Nice to have:
- Docker
`

func testVocabulary(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	return vocab.Default()
}

func TestScore_FullPipeline(t *testing.T) {
	eng := New(&fakeEmbedder{}, nil)

	result, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), config.DefaultScoringConfig())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.CompositeScore, 0.0)
	assert.LessOrEqual(t, result.CompositeScore, 1.0)
	assert.Equal(t, result.Breakdown.CompositeScore, result.CompositeScore)

	assert.Contains(t, result.Breakdown.MatchedSkills, "python")
	assert.Contains(t, result.Breakdown.MatchedSkills, "django")
	assert.Contains(t, result.Breakdown.MissingPreferred, "docker")

	// Candidate meets the years and degree requirements
	assert.Equal(t, 1.0, result.Breakdown.Experience)
	assert.Equal(t, 1.0, result.Breakdown.Education)

	assert.NotEmpty(t, result.Breakdown.TopChunks)
	assert.NotEmpty(t, result.Explanation)
	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.Breakdown.Category)
}

func TestScore_Deterministic(t *testing.T) {
	eng := New(&fakeEmbedder{}, nil)
	candidate := types.NewCandidateDocument(candidateFixture)
	role := types.NewTargetDocument(roleFixture)
	v := testVocabulary(t)
	cfg := config.DefaultScoringConfig()

	first, err := eng.Score(context.Background(), candidate, role, v, cfg)
	require.NoError(t, err)
	second, err := eng.Score(context.Background(), candidate, role, v, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_InvalidConfigFailsBeforeEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{}
	eng := New(embedder, nil)

	cfg := config.DefaultScoringConfig()
	cfg.ComponentWeights.Semantic = 0.5 // sum is now 1.2

	_, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), cfg)
	require.Error(t, err)

	var configErr *config.ConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.Equal(t, 0, embedder.calls)
}

func TestScore_EmptyDocuments(t *testing.T) {
	embedder := &fakeEmbedder{}
	eng := New(embedder, nil)
	v := testVocabulary(t)
	cfg := config.DefaultScoringConfig()

	_, err := eng.Score(context.Background(),
		types.NewCandidateDocument("   \n\t  "),
		types.NewTargetDocument(roleFixture), v, cfg)
	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, types.RoleCandidate, emptyErr.Document)

	_, err = eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(""), v, cfg)
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, types.RoleTarget, emptyErr.Document)

	assert.Equal(t, 0, embedder.calls)
}

func TestScore_EmbedderFailureIsProviderError(t *testing.T) {
	cause := fmt.Errorf("rate limited")
	eng := New(&failingEmbedder{err: cause}, nil)

	_, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), config.DefaultScoringConfig())
	require.Error(t, err)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "embedding", providerErr.Provider)
	assert.True(t, errors.Is(err, cause))
}

func TestScore_VectorCountMismatchIsProviderError(t *testing.T) {
	short := embedding.EmbedderFunc(func(_ context.Context, texts []string) ([][]float32, error) {
		return make([][]float32, len(texts)-1), nil
	})
	eng := New(short, nil)

	_, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), config.DefaultScoringConfig())

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, providerErr.Error(), "vectors")
}

func TestScore_BestChunkWinsAcrossTopics(t *testing.T) {
	// Small windows force the two topics into separate chunks
	cfg := config.DefaultScoringConfig()
	cfg.ChunkWindowWords = 12
	cfg.ChunkOverlapWords = 0

	candidate := types.NewCandidateDocument(
		"Ran a kitchen as head chef with cooking and pastry work daily for years. " +
			"Later moved to backend python development building django services full time.")
	role := types.NewTargetDocument("Backend python engineer working with django.")

	eng := New(&fakeEmbedder{}, nil)
	result, err := eng.Score(context.Background(), candidate, role, testVocabulary(t), cfg)
	require.NoError(t, err)

	require.NotEmpty(t, result.Breakdown.TopChunks)
	best := result.Breakdown.TopChunks[0]
	assert.Contains(t, best.Chunk.Text, "python")
	assert.Greater(t, best.Similarity, 0.5)
}

func TestScore_MultiChunkRoleIsPooled(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	cfg.ChunkWindowWords = 8
	cfg.ChunkOverlapWords = 0

	// Role spans multiple chunks with different topic mixes; pooling must
	// still give a python-heavy candidate a positive similarity.
	role := types.NewTargetDocument(
		"We need python and django expertise for our backend team. " +
			"The backend role also involves python tooling and django upgrades across services.")
	candidate := types.NewCandidateDocument("Senior python developer, django and backend services.")

	eng := New(&fakeEmbedder{}, nil)
	result, err := eng.Score(context.Background(), candidate, role, testVocabulary(t), cfg)
	require.NoError(t, err)

	assert.Greater(t, result.Breakdown.Semantic, 0.0)
}

func TestScore_FallbackExplanationWhenExplainerFails(t *testing.T) {
	eng := New(&fakeEmbedder{}, failingExplainer{})

	result, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), config.DefaultScoringConfig())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Explanation)
	assert.Contains(t, result.Explanation, "Recommendation")
}

func TestScore_CompositeReproducibleFromBreakdown(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	eng := New(&fakeEmbedder{}, nil)

	result, err := eng.Score(context.Background(),
		types.NewCandidateDocument(candidateFixture),
		types.NewTargetDocument(roleFixture),
		testVocabulary(t), cfg)
	require.NoError(t, err)

	b := result.Breakdown
	w := cfg.ComponentWeights
	expected := w.TechnicalSkill*b.TechnicalSkill + w.Semantic*b.Semantic +
		w.Experience*b.Experience + w.Education*b.Education
	for _, adj := range b.Adjustments {
		if adj.Reason == types.AdjustmentCrossDomainBonus {
			expected += adj.Delta
		}
	}
	if expected > 1 {
		expected = 1
	}
	if expected < 0 {
		expected = 0
	}
	assert.InDelta(t, expected, b.CompositeScore, 1e-9)
}
