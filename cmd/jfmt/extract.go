package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/fileutil"
	"github.com/alnah/go-jfmt/internal/hints"
)

// runExtractCmd executes the extract command and returns an exit code.
// It runs the extraction layer alone, without the formatting pipeline.
func runExtractCmd(args []string, env *Environment) int {
	flags, positional, err := parseExtractFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}
	if len(positional) == 0 {
		printExtractUsage(env.Stderr)
		return ExitUsage
	}

	text, err := extract.New().ExtractFile(positional[0])
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFile) {
			err = fmt.Errorf("%w%s", err, hints.ForUnsupportedFile(extract.SupportedExtensions()))
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.output == "" {
		writeContent(env.Stdout, text)
		return ExitSuccess
	}

	if err := fileutil.EnsureDir(filepath.Dir(flags.output)); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	// #nosec G306 -- extracted text is meant to be readable
	if err := os.WriteFile(flags.output, []byte(text), filePermissions); err != nil {
		err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return ExitSuccess
}
