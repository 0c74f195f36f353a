package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/fileutil"
	"github.com/alnah/go-jfmt/internal/hints"
)

// runFormatCmd executes the format command and returns an exit code.
func runFormatCmd(args []string, env *Environment) int {
	flags, positional, err := parseFormatFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	code, err := runFormat(ctx, positional, flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return code
}

// runFormat orchestrates the formatting process.
func runFormat(ctx context.Context, positional []string, flags *formatFlags, env *Environment) (int, error) {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return 0, err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfiguration(configName)
	if err != nil {
		return 0, err
	}
	applyEnvConfig(envCfg, cfg)

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	reg, closeStore, err := openRegistry(cfg, env, false)
	if err != nil {
		return 0, err
	}
	defer func() { _ = closeStore() }()

	// Resolve the target journal format
	format, err := lookupFormat(reg, cfg.Journal.Default)
	if err != nil {
		return 0, err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Using format %s (%s)\n", format.ID, format.Name)
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positional, cfg.Input.DefaultDir)
	if err != nil {
		return 0, err
	}

	svc := jfmt.New()
	ex := extract.New()

	if inputPath == "-" {
		return formatStdin(ctx, svc, format, flags, env)
	}

	// Resolve output directory and discover files
	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return 0, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no supported manuscript files found in %s", inputPath)
	}

	if flags.toStdout {
		if len(files) > 1 {
			return 0, fmt.Errorf("%w: found %d files", ErrStdoutBatch, len(files))
		}
		return formatToStdout(ctx, svc, ex, format, files[0].InputPath, env)
	}

	workers := resolveWorkers(resolveWorkersWithEnv(flags.workers, envCfg.Workers))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Formatting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := formatBatch(ctx, svc, ex, format, files, workers)
	if failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return ExitGeneral, nil
	}
	return ExitSuccess, nil
}

// mergeFlags merges CLI flags into config. CLI flags win.
func mergeFlags(flags *formatFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Journal.Default = flags.format
	}
	if flags.store != "" {
		cfg.Store.Path = flags.store
	}
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// formatStdin reads a plain-text manuscript from stdin. Output goes to
// stdout unless --output names a file or directory.
func formatStdin(ctx context.Context, svc Formatter, format jfmt.JournalFormat, flags *formatFlags, env *Environment) (int, error) {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadManuscript, err)
	}

	text, err := extract.PlainText(data)
	if err != nil {
		return 0, err
	}

	result, err := svc.Format(ctx, jfmt.Input{Text: text, Format: format})
	if err != nil {
		return 0, err
	}

	if flags.output == "" || flags.toStdout {
		writeContent(env.Stdout, result.Content)
		return ExitSuccess, nil
	}

	outPath := flags.output
	if !strings.HasSuffix(outPath, ".txt") {
		outPath = filepath.Join(outPath, result.SourceName)
	}
	if err := fileutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		return 0, err
	}
	// #nosec G306 -- formatted manuscripts are meant to be readable
	if err := os.WriteFile(outPath, []byte(result.Content), filePermissions); err != nil {
		return 0, fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return ExitSuccess, nil
}

// formatToStdout formats a single manuscript file to stdout.
func formatToStdout(ctx context.Context, svc Formatter, ex *extract.Extractor, format jfmt.JournalFormat, inputPath string, env *Environment) (int, error) {
	text, err := ex.ExtractFile(inputPath)
	if err != nil {
		return 0, err
	}

	result, err := svc.Format(ctx, jfmt.Input{
		Text:       text,
		Format:     format,
		SourceName: inputPath,
	})
	if err != nil {
		return 0, err
	}

	writeContent(env.Stdout, result.Content)
	return ExitSuccess, nil
}

// writeContent prints formatted text with a terminating newline.
func writeContent(w io.Writer, content string) {
	fmt.Fprint(w, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(w)
	}
}
