package jfmt

import (
	"context"
	"fmt"
	"regexp"
)

// sectionNames lists the recognized manuscript sections in rule order.
var sectionNames = []string{
	"ABSTRACT",
	"INTRODUCTION",
	"METHODOLOGY",
	"METHODS",
	"RESULTS",
	"DISCUSSION",
	"CONCLUSION",
	"REFERENCES",
}

// Precompiled regex patterns for performance.
var (
	// Whole-word section keywords, any case, anywhere in the text
	sectionKeywordPatterns = compileSectionPatterns(`\b(?i:%s)\b`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// compileSectionPatterns builds one pattern per section name from a
// printf-style template.
func compileSectionPatterns(template string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(sectionNames))
	for _, name := range sectionNames {
		patterns[name] = regexp.MustCompile(fmt.Sprintf(template, name))
	}
	return patterns
}

// sectionFormatter defines the contract for section header promotion.
type sectionFormatter interface {
	FormatSections(ctx context.Context, content string) string
}

// keywordSectionFormatter promotes recognized section keywords to headers.
type keywordSectionFormatter struct{}

// FormatSections rewrites every whole-word occurrence of a section name as
// an uppercase header on its own line, then compresses the blank lines the
// insertion leaves behind. Matching is positional only: keywords are
// promoted wherever they appear, including mid-sentence.
func (f *keywordSectionFormatter) FormatSections(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	for _, name := range sectionNames {
		content = sectionKeywordPatterns[name].ReplaceAllString(content, "\n\n"+name+"\n")
	}
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
