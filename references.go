package jfmt

import (
	"context"
	"regexp"
)

// Numeric citation markers.
var (
	bracketedCitation     = regexp.MustCompile(`\[(\d+)\]`)
	parenthesizedCitation = regexp.MustCompile(`\((\d+)\)`)
)

// citationRule holds the rewrite templates for one reference style.
// An empty template leaves that marker form unchanged.
type citationRule struct {
	bracketed     string // replacement for [n]
	parenthesized string // replacement for (n)
}

// citationRules maps each reference style to its marker rewrites.
// Author-date styles collapse markers to placeholder citations; superscript
// styles keep the number between carets.
var citationRules = map[string]citationRule{
	StyleVancouver: {bracketed: "($1)"},
	StyleAPA:       {bracketed: "[Author, Year]", parenthesized: "(Author, Year)"},
	StyleChicago:   {bracketed: "[Author Year]", parenthesized: "(Author Year)"},
	StyleHarvard:   {bracketed: "[Author, Year]", parenthesized: "(Author, Year)"},
	StyleMLA:       {bracketed: "[Author Page]", parenthesized: "(Author Page)"},
	StyleIEEE:      {parenthesized: "[$1]"},
	StyleAMA:       {bracketed: "^$1^", parenthesized: "^$1^"},
	StyleCSE:       {bracketed: "^$1^", parenthesized: "^$1^"},
	StyleACS:       {bracketed: "^$1^", parenthesized: "^$1^"},
	StyleNature:    {bracketed: "^$1^", parenthesized: "^$1^"},
	StyleScience:   {bracketed: "^$1^", parenthesized: "^$1^"},
}

// referenceConverter defines the contract for citation marker conversion.
type referenceConverter interface {
	ConvertReferences(ctx context.Context, content, style string) string
}

// numericReferenceConverter rewrites [n] and (n) markers per reference style.
type numericReferenceConverter struct{}

// ConvertReferences applies the style's marker rewrites to every numeric
// citation in content. The conversion is purely syntactic: identical
// markers convert identically, and unknown styles pass through unchanged.
func (c *numericReferenceConverter) ConvertReferences(ctx context.Context, content, style string) string {
	if ctx.Err() != nil {
		return content
	}

	canonical, ok := CanonicalReferenceStyle(style)
	if !ok {
		return content
	}

	rule := citationRules[canonical]
	if rule.bracketed != "" {
		content = bracketedCitation.ReplaceAllString(content, rule.bracketed)
	}
	if rule.parenthesized != "" {
		content = parenthesizedCitation.ReplaceAllString(content, rule.parenthesized)
	}
	return content
}
