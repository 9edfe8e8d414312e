package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func testBreakdown() *types.ScoreBreakdown {
	return &types.ScoreBreakdown{
		TechnicalSkill: 0.65,
		Semantic:       0.72,
		Experience:     1.0,
		Education:      0.5,
		Adjustments: []types.Adjustment{
			{Reason: types.AdjustmentSemanticBoost, Delta: 0.32},
			{Reason: types.AdjustmentMissingSkillPenalty, Delta: -0.15},
		},
		MatchedSkills:    []string{"go", "python", "docker", "kubernetes", "terraform", "aws", "gcp"},
		MissingRequired:  []string{"rust", "scala", "kafka"},
		MissingPreferred: []string{"graphql"},
		TopChunks: []types.ChunkMatch{
			{Chunk: types.Chunk{Text: "Built distributed pipelines in Go"}, Similarity: 0.41},
			{Chunk: types.Chunk{Text: "Managed Kubernetes clusters"}, Similarity: 0.38},
		},
		CompositeScore: 0.68,
		Category:       types.CategoryGood,
		Recommendation: "Solid candidate - Review in detail",
	}
}

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBreakdown(testBreakdown())

	out := buf.String()
	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "65.0%")
	assert.Contains(t, out, "72.0%")
	assert.Contains(t, out, "semantic_boost")
	assert.Contains(t, out, "missing_skill_penalty")
	assert.Contains(t, out, "-0.150")
	assert.Contains(t, out, "68.0%")
	assert.Contains(t, out, "Good Match")
}

func TestPrintBreakdown_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBreakdown(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillDetail(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillDetail(testBreakdown())

	out := buf.String()
	assert.Contains(t, out, "SKILL MATCHING")
	assert.Contains(t, out, "Matched 7 skills")
	assert.Contains(t, out, "and 2 more")
	assert.Contains(t, out, "Missing 3 required")
	assert.Contains(t, out, "rust")
	assert.Contains(t, out, "graphql")
}

func TestPrintTopChunks(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTopChunks(testBreakdown())

	out := buf.String()
	assert.Contains(t, out, "TOP MATCHING CHUNKS")
	assert.Contains(t, out, "0.410")
	assert.Contains(t, out, "Built distributed pipelines in Go")
}

func TestPrintResult(t *testing.T) {
	result := &types.MatchResult{
		Breakdown:      *testBreakdown(),
		CompositeScore: 0.68,
		Suggestions:    []string{"Add these key skills to your resume: rust, scala, kafka"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(result)

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "68.0%")
	assert.Contains(t, out, "Review in detail")
	assert.Contains(t, out, "Add these key skills")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	breakdown := testBreakdown()
	breakdown.Recommendation = "An extremely long recommendation string that cannot possibly fit inside the box width"

	NewPrinter(&buf).PrintResult(&types.MatchResult{Breakdown: *breakdown, CompositeScore: 0.68})

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		assert.LessOrEqual(t, len([]rune(string(line))), boxWidth)
	}
}
