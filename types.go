package jfmt

import (
	"fmt"
	"strings"
)

// Reference style constants.
const (
	StyleVancouver = "Vancouver"
	StyleAPA       = "APA"
	StyleChicago   = "Chicago"
	StyleHarvard   = "Harvard"
	StyleMLA       = "MLA"
	StyleIEEE      = "IEEE"
	StyleAMA       = "AMA"
	StyleCSE       = "CSE"
	StyleACS       = "ACS"
	StyleNature    = "Nature"
	StyleScience   = "Science"
)

// referenceStyles lists every recognized style in display order.
var referenceStyles = []string{
	StyleVancouver,
	StyleAPA,
	StyleChicago,
	StyleHarvard,
	StyleMLA,
	StyleIEEE,
	StyleAMA,
	StyleCSE,
	StyleACS,
	StyleNature,
	StyleScience,
}

// ReferenceStyles returns the recognized reference styles in display order.
func ReferenceStyles() []string {
	styles := make([]string, len(referenceStyles))
	copy(styles, referenceStyles)
	return styles
}

// CanonicalReferenceStyle maps a case-insensitive style name to its
// canonical form. The second return is false for unknown styles.
func CanonicalReferenceStyle(style string) (string, bool) {
	for _, s := range referenceStyles {
		if strings.EqualFold(s, style) {
			return s, true
		}
	}
	return "", false
}

// Defaults for user-created formats.
const (
	DefaultWordLimit   = 5000
	DefaultLineSpacing = 2.0
	DefaultFontFamily  = "Times New Roman"
	DefaultFontSize    = 12
	DefaultMargin      = 1.0
)

// Margins holds page margins in inches.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Validate checks that every margin is positive.
func (m Margins) Validate() error {
	for _, v := range []float64{m.Top, m.Bottom, m.Left, m.Right} {
		if v <= 0 {
			return fmt.Errorf("%w: %v (must be positive)", ErrInvalidMargin, v)
		}
	}
	return nil
}

// JournalFormat describes one journal's submission requirements.
// Records are treated as immutable once registered.
type JournalFormat struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	LineSpacing    float64 `json:"lineSpacing"`
	WordLimit      int     `json:"wordLimit"`
	ReferenceStyle string  `json:"referenceStyle"`
	FontFamily     string  `json:"fontFamily"`
	FontSize       int     `json:"fontSize"`
	Margins        Margins `json:"margins"`
}

// Validate checks that every field the pipeline reads is present and valid.
// ID and Description carry no formatting behavior and are not checked.
func (f JournalFormat) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrMissingFormatName
	}
	if f.WordLimit <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidWordLimit, f.WordLimit)
	}
	if f.LineSpacing <= 0 {
		return fmt.Errorf("%w: %v (must be positive)", ErrInvalidLineSpacing, f.LineSpacing)
	}
	if _, ok := CanonicalReferenceStyle(f.ReferenceStyle); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidReferenceStyle, f.ReferenceStyle)
	}
	if strings.TrimSpace(f.FontFamily) == "" {
		return ErrMissingFontFamily
	}
	if f.FontSize <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidFontSize, f.FontSize)
	}
	return f.Margins.Validate()
}

// Input contains formatting parameters.
type Input struct {
	Text       string        // Raw manuscript text (required)
	Format     JournalFormat // Target journal format (required, fully specified)
	SourceName string        // Original file name, drives the output name (optional)
}

// Result is the outcome of a formatting run.
type Result struct {
	Content    string        // Formatted text, banner included
	WordCount  int           // Whitespace-separated words in Content
	Format     JournalFormat // Format the manuscript was formatted against
	SourceName string        // Suggested output file name
}
