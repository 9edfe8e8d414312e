// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentRole identifies which side of a match a document belongs to
type DocumentRole string

// Document role constants
const (
	// RoleCandidate marks the document being evaluated (a resume)
	RoleCandidate DocumentRole = "candidate"
	// RoleTarget marks the document being matched against (a job posting)
	RoleTarget DocumentRole = "target-role"
)

// Document represents a plain-text document submitted for scoring.
// Documents are immutable and owned by the caller; the engine never
// retains them past a scoring call.
type Document struct {
	Text string       `json:"text"`
	Role DocumentRole `json:"role"`
}

// NewCandidateDocument creates a candidate-side document
func NewCandidateDocument(text string) Document {
	return Document{Text: text, Role: RoleCandidate}
}

// NewTargetDocument creates a target-role document
func NewTargetDocument(text string) Document {
	return Document{Text: text, Role: RoleTarget}
}
