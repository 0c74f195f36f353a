// Package jfmt formats manuscripts to match journal submission requirements.
//
// # Quick Start
//
// Create a service, look up a journal format, and format a manuscript:
//
//	svc := jfmt.New()
//	reg := jfmt.NewRegistry()
//
//	format, err := reg.Lookup("nature")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Format(ctx, jfmt.Input{
//	    Text:       manuscript,
//	    Format:     format,
//	    SourceName: "paper.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.SourceName, []byte(result.Content), 0644)
//
// The result carries the formatted text (result.Content), its word count
// banner included (result.WordCount), and the suggested output file name
// (result.SourceName, here "formatted_paper.txt").
//
// # Formatting Pipeline
//
// Formatting runs these stages in a fixed order:
//
//  1. Word-limit truncation (over-limit text flattens to single-spaced words)
//  2. Title promotion and header underlining
//  3. Reference marker conversion ([n] and (n) per the journal's style)
//  4. Section header promotion (ABSTRACT, METHODS, ...)
//  5. Paragraph normalization and body-line indentation
//  6. Journal banner and specification block
//
// The stage order is part of the output contract: header underlining runs
// before section promotion, so underlines appear only for headers the input
// already shaped as blank-line-delimited blocks.
//
// # Journal Formats
//
// A Registry seeds the built-in journal catalog and appends user-created
// formats, optionally persisted through a FormatStore:
//
//	reg := jfmt.NewRegistry(jfmt.WithStore(store))
//	created, err := reg.Register(jfmt.JournalFormat{
//	    Name:           "My Journal",
//	    WordLimit:      4000,
//	    LineSpacing:    2,
//	    ReferenceStyle: jfmt.StyleAPA,
//	    FontFamily:     "Georgia",
//	    FontSize:       11,
//	    Margins:        jfmt.Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
//	})
//
// Register assigns the new format a unique ID and persists user formats
// through the store. Stored formats that fail to load are ignored; the
// built-in catalog is always available.
package jfmt
