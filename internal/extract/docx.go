package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var xmlTags = regexp.MustCompile(`<[^>]+>`)

// xmlEntities restores the five predefined XML entities.
var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDOCX pulls the text out of a Word document. A .docx file is a
// zip archive whose word/document.xml holds the body.
func extractDOCX(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDocumentPackage, err)
	}
	defer r.Close()

	var documentXML []byte
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
		}
		documentXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
		}
		break
	}

	if len(documentXML) == 0 {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrNotDocumentPackage)
	}

	text := normalizeWhitespace(stripWordMarkup(string(documentXML)))
	if text == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}

// stripWordMarkup turns WordprocessingML into plain text. Paragraph ends
// become blank lines so the document's paragraph structure survives.
func stripWordMarkup(s string) string {
	s = strings.ReplaceAll(s, "</w:p>", "\n\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTags.ReplaceAllString(s, "")
	return xmlEntities.Replace(s)
}
