package extract_test

// Notes:
// - The PDF happy path is not tested: it needs a binary fixture with valid
//   xref tables, which cannot be authored inline. The open-failure path and
//   the shared whitespace normalization are covered instead.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-jfmt/internal/extract"
)

// writeManuscript drops content into a temp file with the given name.
func writeManuscript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// writeDOCX builds a minimal .docx archive around the given document.xml.
// An empty documentXML produces an archive without the document part.
func writeDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manuscript.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("setup create: %v", err)
	}
	zw := zip.NewWriter(f)

	if documentXML != "" {
		w, err := zw.Create("word/document.xml")
		if err != nil {
			t.Fatalf("setup zip entry: %v", err)
		}
		if _, err := w.Write([]byte(documentXML)); err != nil {
			t.Fatalf("setup zip write: %v", err)
		}
	} else {
		w, err := zw.Create("word/styles.xml")
		if err != nil {
			t.Fatalf("setup zip entry: %v", err)
		}
		if _, err := w.Write([]byte("<w:styles/>")); err != nil {
			t.Fatalf("setup zip write: %v", err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("setup zip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("setup close: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestSupportedExtensions - Extension list
// ---------------------------------------------------------------------------

func TestSupportedExtensions(t *testing.T) {
	t.Parallel()

	exts := extract.SupportedExtensions()

	for _, want := range []string{".txt", ".text", ".md", ".markdown", ".docx", ".pdf"} {
		found := false
		for _, got := range exts {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("SupportedExtensions() missing %q", want)
		}
	}

	// Callers must not be able to mutate the package list
	exts[0] = "mutated"
	if extract.SupportedExtensions()[0] == "mutated" {
		t.Error("SupportedExtensions() returned shared slice")
	}
}

// ---------------------------------------------------------------------------
// TestPlainText - Raw text normalization
// ---------------------------------------------------------------------------

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected string
		wantErr  error
	}{
		{
			name:     "unix text passes through",
			data:     "First paragraph.\n\nSecond paragraph.",
			expected: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name:     "windows line endings are normalized",
			data:     "line one\r\nline two\r\n",
			expected: "line one\nline two\n",
		},
		{
			name:     "bare carriage returns are normalized",
			data:     "line one\rline two",
			expected: "line one\nline two",
		},
		{
			name:     "indentation is preserved",
			data:     "header\n    indented line",
			expected: "header\n    indented line",
		},
		{
			name:    "empty data is rejected",
			data:    "",
			wantErr: extract.ErrNoTextContent,
		},
		{
			name:    "whitespace only is rejected",
			data:    "  \n\t\r\n  ",
			wantErr: extract.ErrNoTextContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.PlainText([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PlainText() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlainText() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("PlainText() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractFile - Dispatch and per-format behavior
// ---------------------------------------------------------------------------

func TestExtractFile_PlainText(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "paper.txt", "Title line\r\n\r\nBody text here.")

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	want := "Title line\n\nBody text here."
	if got != want {
		t.Errorf("ExtractFile() = %q, want %q", got, want)
	}
}

func TestExtractFile_TextExtension(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "paper.text", "Some content.")

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if got != "Some content." {
		t.Errorf("ExtractFile() = %q, want %q", got, "Some content.")
	}
}

func TestExtractFile_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "paper.TXT", "Case test.")

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if got != "Case test." {
		t.Errorf("ExtractFile() = %q, want %q", got, "Case test.")
	}
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	e := extract.New()

	_, err := e.ExtractFile("manuscript.rtf")
	if !errors.Is(err, extract.ErrUnsupportedFile) {
		t.Errorf("error = %v, want ErrUnsupportedFile", err)
	}
	if !strings.Contains(err.Error(), ".rtf") {
		t.Errorf("error should name the extension, got: %v", err)
	}
}

func TestExtractFile_MissingFile(t *testing.T) {
	t.Parallel()

	e := extract.New()

	_, err := e.ExtractFile("/nonexistent/paper.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractFile_EmptyText(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "empty.txt", "   \n  ")

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrNoTextContent) {
		t.Errorf("error = %v, want ErrNoTextContent", err)
	}
}

// ---------------------------------------------------------------------------
// TestExtractFile_Markdown - Markdown reduction
// ---------------------------------------------------------------------------

func TestExtractFile_Markdown(t *testing.T) {
	t.Parallel()

	e := extract.New()
	source := "# Title\n\n" +
		"First paragraph with *emphasis* and [a link](https://example.org).\n\n" +
		"- item one\n" +
		"- item two\n\n" +
		"```\ncode line\n```\n"
	path := writeManuscript(t, "paper.md", source)

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}

	want := "Title\n\n" +
		"First paragraph with emphasis and a link.\n\n" +
		"item one\n\n" +
		"item two\n\n" +
		"code line"
	if got != want {
		t.Errorf("ExtractFile() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExtractFile_MarkdownRestoresEscapes(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "quotes.md", "He said \"yes\" & left, citing Smith <2020>.\n")

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	want := "He said \"yes\" & left, citing Smith <2020>."
	if got != want {
		t.Errorf("ExtractFile() = %q, want %q", got, want)
	}
}

func TestExtractFile_MarkdownEmpty(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "empty.md", "\n\n")

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrNoTextContent) {
		t.Errorf("error = %v, want ErrNoTextContent", err)
	}
}

// ---------------------------------------------------------------------------
// TestExtractFile_DOCX - Word document reduction
// ---------------------------------------------------------------------------

func TestExtractFile_DOCX(t *testing.T) {
	t.Parallel()

	e := extract.New()
	documentXML := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>First paragraph by Smith &amp; Jones.</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second</w:t></w:r><w:br/><w:r><w:t>paragraph.</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	path := writeDOCX(t, documentXML)

	got, err := e.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}

	want := "First paragraph by Smith & Jones.\n\nSecond\nparagraph."
	if got != want {
		t.Errorf("ExtractFile() mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestExtractFile_DOCXNotZip(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "fake.docx", "this is not a zip archive")

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrNotDocumentPackage) {
		t.Errorf("error = %v, want ErrNotDocumentPackage", err)
	}
}

func TestExtractFile_DOCXMissingDocument(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeDOCX(t, "")

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrNotDocumentPackage) {
		t.Errorf("error = %v, want ErrNotDocumentPackage", err)
	}
}

func TestExtractFile_DOCXEmptyBody(t *testing.T) {
	t.Parallel()

	e := extract.New()
	documentXML := `<w:document><w:body><w:p></w:p></w:body></w:document>`
	path := writeDOCX(t, documentXML)

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrNoTextContent) {
		t.Errorf("error = %v, want ErrNoTextContent", err)
	}
}

// ---------------------------------------------------------------------------
// TestExtractFile_PDF - PDF open failure
// ---------------------------------------------------------------------------

func TestExtractFile_PDFInvalid(t *testing.T) {
	t.Parallel()

	e := extract.New()
	path := writeManuscript(t, "fake.pdf", "this is not a pdf document")

	_, err := e.ExtractFile(path)
	if !errors.Is(err, extract.ErrDocumentRead) {
		t.Errorf("error = %v, want ErrDocumentRead", err)
	}
}
