package jfmt

import (
	"context"
	"strings"
)

// manuscriptTruncator defines the contract for word-limit enforcement.
type manuscriptTruncator interface {
	TruncateWords(ctx context.Context, content string, limit int) string
}

// whitespaceTruncator splits on whitespace runs and keeps the first limit words.
type whitespaceTruncator struct{}

// TruncateWords returns content unchanged when it fits within limit.
// Over-limit manuscripts flatten to the first limit words joined by single
// spaces; original line breaks do not survive truncation.
func (t *whitespaceTruncator) TruncateWords(ctx context.Context, content string, limit int) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	words := strings.Fields(content)
	if len(words) <= limit {
		return content
	}
	return strings.Join(words[:limit], " ")
}

// CountWords reports the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
