// Package chunking splits documents into overlapping word windows used as
// the unit of semantic comparison.
package chunking

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Chunk splits text on whitespace word boundaries into windows of windowWords
// words, with consecutive windows sharing overlapWords words. Offsets on the
// returned chunks are word indices into the split text.
//
// Empty text yields an empty (nil) sequence, not an error. Text shorter than
// one window yields exactly one chunk spanning the whole text. Splitting is
// pure whitespace tokenization, so identical input always produces identical
// chunk boundaries.
func Chunk(text string, windowWords, overlapWords int) ([]types.Chunk, error) {
	if windowWords <= 0 {
		return nil, config.NewConfigError("chunk_window_words", "must be positive")
	}
	if overlapWords < 0 {
		return nil, config.NewConfigError("chunk_overlap_words", "must be non-negative")
	}
	if overlapWords >= windowWords {
		return nil, config.NewConfigError("chunk_overlap_words", "overlap must be smaller than window size")
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	stride := windowWords - overlapWords
	chunks := make([]types.Chunk, 0, (len(words)+stride-1)/stride)

	for start := 0; start < len(words); start += stride {
		end := start + windowWords
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, types.Chunk{
			Text:        strings.Join(words[start:end], " "),
			StartOffset: start,
			EndOffset:   end,
		})

		if end == len(words) {
			break
		}
	}

	return chunks, nil
}

// Texts returns just the chunk texts, in order. Convenience for handing a
// chunk sequence to the embedding provider as one batch.
func Texts(chunks []types.Chunk) []string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts
}
