package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every readable page.
// Pages that fail to decode are skipped rather than failing the whole
// document; scanned pages simply contribute nothing.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := normalizeWhitespace(sb.String())
	if text == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}
