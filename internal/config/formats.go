package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-jfmt/internal/yamlutil"
)

// Sentinel errors for formats file operations.
var (
	ErrFormatsNotFound = errors.New("formats file not found")
	ErrFormatsParse    = errors.New("failed to parse formats file")
	ErrNoFormats       = errors.New("formats file defines no formats")
)

// FormatFile is the root of a formats YAML document, as consumed by
// "jfmt formats add --file" and produced by "jfmt formats export".
type FormatFile struct {
	Formats []FormatRecord `yaml:"formats"`
}

// FormatRecord describes one journal format in a formats YAML file.
// Zero-valued numeric fields mean "use the default"; the CLI fills them
// in before validation.
type FormatRecord struct {
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description,omitempty"`
	LineSpacing    float64       `yaml:"lineSpacing,omitempty"`
	WordLimit      int           `yaml:"wordLimit,omitempty"`
	ReferenceStyle string        `yaml:"referenceStyle,omitempty"`
	FontFamily     string        `yaml:"fontFamily,omitempty"`
	FontSize       int           `yaml:"fontSize,omitempty"`
	Margins        MarginsRecord `yaml:"margins,omitempty"`
}

// MarginsRecord holds page margins in inches.
type MarginsRecord struct {
	Top    float64 `yaml:"top,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
}

// LoadFormats reads a formats YAML file and returns its records.
// Field lengths are checked here; semantic validation (word limits,
// reference styles) is the caller's responsibility.
func LoadFormats(path string) ([]FormatRecord, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- formats path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFormatsNotFound, path)
		}
		return nil, fmt.Errorf("reading formats file: %w", err)
	}

	var file FormatFile
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormatsParse, err)
	}

	if len(file.Formats) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFormats, path)
	}

	for i, rec := range file.Formats {
		field := func(name string) string { return fmt.Sprintf("formats[%d].%s", i, name) }
		if err := validateFieldLength(field("name"), rec.Name, MaxNameLength); err != nil {
			return nil, err
		}
		if err := validateFieldLength(field("description"), rec.Description, MaxDescriptionLength); err != nil {
			return nil, err
		}
		if err := validateFieldLength(field("fontFamily"), rec.FontFamily, MaxFontLength); err != nil {
			return nil, err
		}
		if err := validateFieldLength(field("referenceStyle"), rec.ReferenceStyle, MaxStyleLength); err != nil {
			return nil, err
		}
	}

	return file.Formats, nil
}
