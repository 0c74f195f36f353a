package jfmt

import (
	"context"
	"strings"
)

// Service orchestrates the manuscript formatting pipeline.
type Service struct {
	truncator  manuscriptTruncator
	titles     titleFormatter
	references referenceConverter
	sections   sectionFormatter
	paragraphs paragraphFormatter
	banner     bannerBuilder
}

// New creates a Service with the standard pipeline stages.
func New() *Service {
	return &Service{
		truncator:  &whitespaceTruncator{},
		titles:     &uppercaseTitleFormatter{},
		references: &numericReferenceConverter{},
		sections:   &keywordSectionFormatter{},
		paragraphs: &indentParagraphFormatter{},
		banner:     &formatBannerBuilder{},
	}
}

// Format runs the full pipeline and returns the formatted manuscript.
// The stage order is fixed and part of the output contract: title
// underlining runs before section promotion, so underlines only appear for
// headers the input already delimits with blank lines.
func (s *Service) Format(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Enforce the word limit
	content := s.truncator.TruncateWords(ctx, input.Text, input.Format.WordLimit)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Promote the title line, underline pre-shaped headers
	content = s.titles.FormatTitle(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Rewrite citation markers for the journal's reference style
	content = s.references.ConvertReferences(ctx, content, input.Format.ReferenceStyle)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Promote section keywords to headers
	content = s.sections.FormatSections(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Normalize paragraphs and indent body lines
	content = s.paragraphs.FormatParagraphs(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Prepend the journal banner
	content = s.banner.BuildBanner(ctx, content, input.Format)

	return &Result{
		Content:    content,
		WordCount:  CountWords(content),
		Format:     input.Format,
		SourceName: DownloadName(input.SourceName),
	}, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return ErrEmptyManuscript
	}
	return input.Format.Validate()
}
