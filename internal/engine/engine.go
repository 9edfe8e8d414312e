// Package engine orchestrates a full scoring run: chunking both documents,
// batching all chunk texts into a single embedding call, computing the
// keyword and auxiliary signals locally, and combining everything into an
// explainable match result.
package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/chunking"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/explain"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Engine scores candidate documents against target-role documents. The
// embedder is required; the explainer is optional and failures there never
// fail a scoring run.
type Engine struct {
	embedder  embedding.Embedder
	explainer explain.Explainer
}

// New creates an engine. Pass a nil explainer to always use the
// deterministic fallback explanation.
func New(embedder embedding.Embedder, explainer explain.Explainer) *Engine {
	return &Engine{embedder: embedder, explainer: explainer}
}

// Score runs the full hybrid pipeline and returns a match result with the
// composite score, the per-component breakdown, improvement suggestions,
// and an explanation.
//
// Configuration is validated up front; an invalid config fails before any
// document processing or provider call. Chunk embedding and the local
// keyword/experience/education signals run concurrently since neither
// depends on the other.
func (e *Engine) Score(ctx context.Context, candidate, role types.Document, v *vocab.Vocabulary, cfg config.ScoringConfig) (*types.MatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if e.embedder == nil {
		return nil, fmt.Errorf("engine has no embedder configured")
	}

	candidateText := strings.TrimSpace(candidate.Text)
	if candidateText == "" {
		return nil, &EmptyInputError{Document: types.RoleCandidate}
	}
	roleText := strings.TrimSpace(role.Text)
	if roleText == "" {
		return nil, &EmptyInputError{Document: types.RoleTarget}
	}

	candidateChunks, err := chunking.Chunk(candidateText, cfg.ChunkWindowWords, cfg.ChunkOverlapWords)
	if err != nil {
		return nil, err
	}
	roleChunks, err := chunking.Chunk(roleText, cfg.ChunkWindowWords, cfg.ChunkOverlapWords)
	if err != nil {
		return nil, err
	}

	var (
		semantic        matching.SemanticResult
		skillMatch      types.SkillMatch
		experienceScore float64
		educationScore  float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := e.semanticSignal(gctx, candidateChunks, roleChunks, cfg.SemanticBoostFactor)
		if err != nil {
			return err
		}
		semantic = result
		return nil
	})
	g.Go(func() error {
		skillMatch = matching.Match(candidateText, roleText, v, cfg)
		experienceScore = matching.ExperienceScore(candidateText, roleText, cfg)
		educationScore = matching.EducationScore(candidateText, roleText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown := matching.Combine(skillMatch, semantic, experienceScore, educationScore, cfg)

	result := &types.MatchResult{
		Breakdown:      breakdown,
		CompositeScore: breakdown.CompositeScore,
		Suggestions:    matching.Suggestions(skillMatch),
	}
	result.Explanation = e.explanation(ctx, breakdown, roleText)

	return result, nil
}

// semanticSignal embeds all chunks of both documents in one provider call,
// mean-pools the role vectors into a single comparison vector, and scores
// the candidate chunks against it.
func (e *Engine) semanticSignal(ctx context.Context, candidateChunks, roleChunks []types.Chunk, boostFactor float64) (matching.SemanticResult, error) {
	texts := append(chunking.Texts(candidateChunks), chunking.Texts(roleChunks)...)

	vectors, err := e.embedder.Embed(ctx, texts)
	if err != nil {
		return matching.SemanticResult{}, &ProviderError{Provider: "embedding", Cause: err}
	}
	if len(vectors) != len(texts) {
		return matching.SemanticResult{}, &ProviderError{
			Provider: "embedding",
			Cause:    fmt.Errorf("expected %d vectors, got %d", len(texts), len(vectors)),
		}
	}

	candidateVectors := vectors[:len(candidateChunks)]
	roleVector := matching.MeanVector(vectors[len(candidateChunks):])

	return matching.SemanticScore(candidateChunks, candidateVectors, roleVector, boostFactor), nil
}

// explanation asks the explainer for prose, falling back to the
// deterministic template when no explainer is configured or the call fails
func (e *Engine) explanation(ctx context.Context, breakdown types.ScoreBreakdown, roleText string) string {
	if e.explainer == nil {
		return explain.Fallback(breakdown)
	}
	text, err := e.explainer.Explain(ctx, breakdown, roleText)
	if err != nil || strings.TrimSpace(text) == "" {
		return explain.Fallback(breakdown)
	}
	return text
}
