package jfmt

import (
	"context"
	"testing"
)

func TestKeywordSectionFormatter_FormatSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keyword on its own line becomes a header",
			input:    "before\nmethods\nafter",
			expected: "before\n\nMETHODS\n\nafter",
		},
		{
			name:     "keyword matches case-insensitively",
			input:    "before\nReSuLtS\nafter",
			expected: "before\n\nRESULTS\n\nafter",
		},
		{
			name:     "keyword mid-sentence is still promoted",
			input:    "the results were clear",
			expected: "the \n\nRESULTS\n were clear",
		},
		{
			name:     "keyword inside a longer word is left alone",
			input:    "methodological concerns",
			expected: "methodological concerns",
		},
		{
			name:     "methodology and methods are distinct keywords",
			input:    "methodology\nthen methods",
			expected: "\n\nMETHODOLOGY\n\nthen \n\nMETHODS\n",
		},
		{
			name:     "blank-line runs around headers collapse to one",
			input:    "intro\n\n\n\nresults\n\n\n\ndiscussion",
			expected: "intro\n\nRESULTS\n\nDISCUSSION\n",
		},
		{
			name:     "no keywords unchanged",
			input:    "nothing to promote here",
			expected: "nothing to promote here",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	formatter := &keywordSectionFormatter{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatter.FormatSections(ctx, tt.input)
			if got != tt.expected {
				t.Errorf("FormatSections() = %q, want %q", got, tt.expected)
			}
		})
	}
}
