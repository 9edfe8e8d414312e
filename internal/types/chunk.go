// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Chunk represents one overlapping window of a document's text.
// Offsets are word indices into the source document, with EndOffset
// exclusive, so consecutive chunks overlap by design.
type Chunk struct {
	Text        string `json:"text"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`
}

// ChunkMatch pairs a candidate chunk with its similarity against the
// target-role document. Used to surface match evidence for explanations.
type ChunkMatch struct {
	Chunk      Chunk   `json:"chunk"`
	Similarity float64 `json:"similarity"`
}
