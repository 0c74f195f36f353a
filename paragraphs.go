package jfmt

import (
	"context"
	"regexp"
	"strings"
)

// Blank-line runs of any length normalize to a single blank line.
var blankLineRuns = regexp.MustCompile(`\n{2,}`)

// paragraphIndent is prepended to every indented body line.
const paragraphIndent = "    "

// paragraphFormatter defines the contract for paragraph layout.
type paragraphFormatter interface {
	FormatParagraphs(ctx context.Context, content string) string
}

// indentParagraphFormatter separates paragraphs and indents body lines.
type indentParagraphFormatter struct{}

// FormatParagraphs normalizes blank-line runs, then indents every line after
// the first that has visible text and is not an all-uppercase header line.
func (f *indentParagraphFormatter) FormatParagraphs(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = blankLineRuns.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Headers and underlines uppercase to themselves and stay flush left
		if line == strings.ToUpper(line) {
			continue
		}
		lines[i] = paragraphIndent + line
	}
	return strings.Join(lines, "\n")
}
