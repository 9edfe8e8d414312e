package engine

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// EmptyInputError indicates a document was empty after trimming. No partial
// score is produced for an empty document.
type EmptyInputError struct {
	Document types.DocumentRole
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s document has no content", e.Document)
}

// ProviderError wraps a failure from an external provider. For the
// embedding provider this is fatal to the scoring call: the semantic
// sub-score cannot be computed without vectors.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider failed: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s provider failed", e.Provider)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
