package jfmt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// bannerBuilder defines the contract for the journal banner.
type bannerBuilder interface {
	BuildBanner(ctx context.Context, content string, format JournalFormat) string
}

// formatBannerBuilder prepends the journal banner and specification block.
type formatBannerBuilder struct{}

// BuildBanner prepends a "FORMATTED FOR:" header, an "=" underline of equal
// rune count, and the format specification block. A single blank line
// separates header, block, and body.
func (b *formatBannerBuilder) BuildBanner(ctx context.Context, content string, format JournalFormat) string {
	if ctx.Err() != nil {
		return content
	}

	header := "FORMATTED FOR: " + strings.ToUpper(format.Name)
	underline := strings.Repeat("=", utf8.RuneCountInString(header))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	sb.WriteString(underline)
	sb.WriteString("\n\n")
	sb.WriteString("Word Limit: " + groupThousands(format.WordLimit) + " words\n")
	sb.WriteString("Line Spacing: " + formatNumber(format.LineSpacing) + "\n")
	sb.WriteString("Reference Style: " + format.ReferenceStyle + "\n")
	fmt.Fprintf(&sb, "Font: %s, %dpt\n", format.FontFamily, format.FontSize)
	fmt.Fprintf(&sb, "Margins: %s\" top, %s\" bottom, %s\" left, %s\" right\n",
		formatNumber(format.Margins.Top),
		formatNumber(format.Margins.Bottom),
		formatNumber(format.Margins.Left),
		formatNumber(format.Margins.Right))
	sb.WriteByte('\n')
	sb.WriteString(content)
	return sb.String()
}

// formatNumber prints a float without trailing zeros (1.5, 2, 0.75).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupThousands renders n with comma separators (12345 -> "12,345").
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
