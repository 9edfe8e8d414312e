package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// topMatchCount is how many best-matching chunks are reported as evidence
const topMatchCount = 5

// SemanticResult holds the semantic similarity signal and its evidence.
// Score is the boosted, clamped sub-score; RawScore is the best cosine
// similarity before calibration, kept so the boost stays inspectable.
type SemanticResult struct {
	Score      float64            `json:"score"`
	RawScore   float64            `json:"raw_score"`
	TopMatches []types.ChunkMatch `json:"top_matches"`
}

// BoostAdjustment expresses the calibration applied to the raw similarity
// as a recordable breakdown entry
func (r SemanticResult) BoostAdjustment() types.Adjustment {
	return types.Adjustment{
		Reason: types.AdjustmentSemanticBoost,
		Delta:  r.Score - r.RawScore,
	}
}

// SemanticScore scores candidate chunks against a single role vector.
//
// The aggregate is the cosine similarity of the best-matching candidate
// chunk, multiplied by boostFactor and clamped to [0,1]. Raw cosine
// similarity runs empirically low relative to human judgment; the boost is
// a calibration constant, passed in rather than wired into the algorithm.
//
// Up to five top chunks are reported with their raw similarities, ties
// broken by original chunk order (earlier chunk wins).
func SemanticScore(chunks []types.Chunk, chunkVectors [][]float32, roleVector []float32, boostFactor float64) SemanticResult {
	if len(chunks) == 0 || len(chunks) != len(chunkVectors) || len(roleVector) == 0 {
		return SemanticResult{}
	}

	matches := make([]types.ChunkMatch, len(chunks))
	for i, vec := range chunkVectors {
		matches[i] = types.ChunkMatch{
			Chunk:      chunks[i],
			Similarity: CosineSimilarity(vec, roleVector),
		}
	}

	// Stable sort keeps earlier chunks ahead on equal similarity
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	top := matches
	if len(top) > topMatchCount {
		top = top[:topMatchCount]
	}

	raw := top[0].Similarity
	boosted := raw * boostFactor
	if boosted < 0 {
		boosted = 0
	}
	if boosted > 1 {
		boosted = 1
	}

	return SemanticResult{
		Score:      boosted,
		RawScore:   raw,
		TopMatches: top,
	}
}

// MeanVector pools a set of chunk vectors into a single vector by
// element-wise mean. This is how a multi-chunk role document is reduced to
// one comparison vector: mean pooling is deterministic and keeps the
// comparison count linear in the number of candidate chunks.
func MeanVector(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	mean := make([]float32, len(vectors[0]))
	for _, vec := range vectors {
		for i, v := range vec {
			if i < len(mean) {
				mean[i] += v
			}
		}
	}

	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector has zero magnitude or lengths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
