package jfmt

import (
	"context"
	"strings"
)

// Section headers already shaped as "\n\nName\n" blocks, any case.
var sectionHeaderPatterns = compileSectionPatterns(`\n\n(?i:%s)\n`)

// titleFormatter defines the contract for title and header styling.
type titleFormatter interface {
	FormatTitle(ctx context.Context, content string) string
}

// uppercaseTitleFormatter promotes the first line to a TITLE: header and
// underlines section headers the manuscript already delimits.
type uppercaseTitleFormatter struct{}

// FormatTitle rewrites the first non-blank line and underlines pre-shaped
// section headers.
func (f *uppercaseTitleFormatter) FormatTitle(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = promoteTitleLine(content)
	content = underlineSectionHeaders(content)
	return content
}

// promoteTitleLine rewrites the first non-blank line as "TITLE: " plus the
// line uppercased. Blank leading lines are skipped, not removed.
func promoteTitleLine(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = "TITLE: " + strings.ToUpper(line)
		break
	}
	return strings.Join(lines, "\n")
}

// underlineSectionHeaders adds an "=" underline, one per character, to each
// section header sitting alone between a blank line and a line break.
func underlineSectionHeaders(content string) string {
	for _, name := range sectionNames {
		underline := strings.Repeat("=", len(name))
		replacement := "\n\n" + name + "\n" + underline + "\n"
		content = sectionHeaderPatterns[name].ReplaceAllString(content, replacement)
	}
	return content
}
