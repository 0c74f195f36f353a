package main

import (
	"errors"
	"os"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/store"
)

// Exit codes follow Unix conventions: 0 = success, 1 = general error,
// 2 = usage error. Codes 3 and 4 distinguish failure classes that scripts
// commonly branch on.
const (
	ExitSuccess = 0 // Formatting completed
	ExitGeneral = 1 // Unexpected or partial failure
	ExitUsage   = 2 // Bad flags, config, or format selection
	ExitIO      = 3 // File read/write problems
	ExitStore   = 4 // Format store unavailable or corrupt
)

// exitCodeFor maps an error to its exit code using errors.Is chains,
// so wrapped errors resolve to the same code as their sentinels.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Store errors (exit 4)
	switch {
	case errors.Is(err, store.ErrOpenStore),
		errors.Is(err, store.ErrCorruptValue),
		errors.Is(err, jfmt.ErrStorePersist):
		return ExitStore
	}

	// I/O errors (exit 3)
	switch {
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrReadManuscript),
		errors.Is(err, ErrWriteOutput),
		errors.Is(err, extract.ErrDocumentRead),
		errors.Is(err, extract.ErrNotDocumentPackage):
		return ExitIO
	}

	// Usage, config, and validation errors (exit 2)
	switch {
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrFormatsNotFound),
		errors.Is(err, config.ErrFormatsParse),
		errors.Is(err, config.ErrNoFormats),
		errors.Is(err, jfmt.ErrEmptyManuscript),
		errors.Is(err, jfmt.ErrMissingFormatName),
		errors.Is(err, jfmt.ErrInvalidWordLimit),
		errors.Is(err, jfmt.ErrInvalidLineSpacing),
		errors.Is(err, jfmt.ErrInvalidReferenceStyle),
		errors.Is(err, jfmt.ErrMissingFontFamily),
		errors.Is(err, jfmt.ErrInvalidFontSize),
		errors.Is(err, jfmt.ErrInvalidMargin),
		errors.Is(err, jfmt.ErrUnknownFormat),
		errors.Is(err, jfmt.ErrBuiltinFormat),
		errors.Is(err, extract.ErrUnsupportedFile),
		errors.Is(err, extract.ErrNoTextContent),
		errors.Is(err, ErrNoFormatSelected),
		errors.Is(err, ErrStdoutBatch),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, ErrUnsupportedShell):
		return ExitUsage
	}

	return ExitGeneral
}
