package jfmt

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyManuscript = errors.New("manuscript text cannot be empty")

	// Journal format validation errors.
	ErrMissingFormatName     = errors.New("journal format name cannot be empty")
	ErrInvalidWordLimit      = errors.New("invalid word limit")
	ErrInvalidLineSpacing    = errors.New("invalid line spacing")
	ErrInvalidReferenceStyle = errors.New("invalid reference style")
	ErrMissingFontFamily     = errors.New("font family cannot be empty")
	ErrInvalidFontSize       = errors.New("invalid font size")
	ErrInvalidMargin         = errors.New("invalid margin")

	// Registry errors.
	ErrUnknownFormat = errors.New("unknown journal format")
	ErrBuiltinFormat = errors.New("built-in formats cannot be removed")
	ErrStorePersist  = errors.New("failed to persist custom formats")
)
