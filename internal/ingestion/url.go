package ingestion

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// FromURL fetches a job posting page and returns its cleaned text, ready to
// be scored as a target-role document.
func FromURL(ctx context.Context, urlStr string) (string, error) {
	text, err := fetch.Posting(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}
