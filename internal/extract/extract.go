// Package extract reads manuscript text out of supported file formats.
//
// Plain text passes through with normalized line endings. Markdown, Word,
// and PDF documents are reduced to plain paragraphs separated by blank
// lines, which is the shape the formatting pipeline expects.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sentinel errors for extraction operations.
var (
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrNoTextContent      = errors.New("no extractable text content")
	ErrNotDocumentPackage = errors.New("not a valid document package")
	ErrDocumentRead       = errors.New("failed to read document")
)

// supportedExtensions lists the manuscript file types ExtractFile
// understands, in display order.
var supportedExtensions = []string{".txt", ".text", ".md", ".markdown", ".docx", ".pdf"}

// SupportedExtensions returns the file extensions ExtractFile understands.
func SupportedExtensions() []string {
	result := make([]string, len(supportedExtensions))
	copy(result, supportedExtensions)
	return result
}

// Extractor reads manuscript text from files.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractFile reads the file at path and returns its text content.
// The handler is chosen by extension, case-insensitively.
func (e *Extractor) ExtractFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".text":
		data, err := os.ReadFile(path) // #nosec G304 -- manuscript path is user-provided
		if err != nil {
			return "", fmt.Errorf("reading manuscript: %w", err)
		}
		return PlainText(data)
	case ".md", ".markdown":
		data, err := os.ReadFile(path) // #nosec G304 -- manuscript path is user-provided
		if err != nil {
			return "", fmt.Errorf("reading manuscript: %w", err)
		}
		return markdownToText(data)
	case ".docx":
		return extractDOCX(path)
	case ".pdf":
		return extractPDF(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
}

// PlainText interprets data as UTF-8 text with normalized line endings.
// Line structure is preserved; only blank input is rejected.
func PlainText(data []byte) (string, error) {
	text := normalizeLineEndings(string(data))
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}

// Precompiled regex patterns for performance.
var extraBlankLines = regexp.MustCompile(`\n{3,}`)

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// normalizeWhitespace trims each line, caps blank runs at one empty line,
// and trims the result. Used for converted documents where the source
// markup, not the line layout, carries the paragraph structure.
func normalizeWhitespace(s string) string {
	s = normalizeLineEndings(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = extraBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
