package main

// Notes:
// - runFormat reads JFMT_* variables, so end-to-end tests clear them with
//   t.Setenv and stay serial. Pure helpers (mergeFlags, resolveOutputDir,
//   writeContent) run in parallel.
// - Signal handling is exercised in signal_test.go; these tests pass
//   context.Background() directly.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
)

// clearFormatEnv blanks every JFMT_* variable and points the user config
// dir at an empty temp dir, so ambient settings cannot leak into the test.
// Implies a serial test.
func clearFormatEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func formatTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestRunFormat - End-to-end formatting through the command layer
// ---------------------------------------------------------------------------

func TestRunFormat(t *testing.T) {
	t.Run("formats a text file with a builtin format", func(t *testing.T) {
		clearFormatEnv(t)

		dir := t.TempDir()
		input := filepath.Join(dir, "paper.txt")
		writeTestFile(t, input, "Cells divide. They also differentiate.\n\nThis is the second paragraph.")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, stderr := formatTestEnv("")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v (stderr: %s)", err, stderr.String())
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}

		outPath := filepath.Join(dir, "formatted_paper.txt")
		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.Contains(string(data), "FORMATTED FOR: NATURE") {
			t.Errorf("output missing banner: %q", string(data))
		}
		if !strings.Contains(stdout.String(), "Created "+outPath) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("formats stdin to stdout", func(t *testing.T) {
		clearFormatEnv(t)

		flags, positional, err := parseFormatFlags([]string{
			"--format", "science",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"-",
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("A manuscript typed straight into the pipe.")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "FORMATTED FOR: SCIENCE") {
			t.Errorf("stdout missing banner: %q", stdout.String())
		}
	})

	t.Run("formats stdin to a file", func(t *testing.T) {
		clearFormatEnv(t)

		outPath := filepath.Join(t.TempDir(), "submission.txt")
		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--output", outPath,
			"-",
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("Text from a pipeline.")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}
		if _, err := os.Stat(outPath); err != nil {
			t.Errorf("expected output file: %v", err)
		}
		if !strings.Contains(stdout.String(), "Created "+outPath) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("stdout flag writes to stdout only", func(t *testing.T) {
		clearFormatEnv(t)

		dir := t.TempDir()
		input := filepath.Join(dir, "paper.md")
		writeTestFile(t, input, "# Title\n\nBody text here.")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "lancet",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--stdout",
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}
		if stdout.Len() == 0 {
			t.Error("expected formatted text on stdout")
		}
		if _, err := os.Stat(filepath.Join(dir, "formatted_paper.txt")); !errors.Is(err, os.ErrNotExist) {
			t.Error("stdout mode should not create files")
		}
	})

	t.Run("stdout flag rejects batches", func(t *testing.T) {
		clearFormatEnv(t)

		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "one.txt"), "a")
		writeTestFile(t, filepath.Join(dir, "two.txt"), "b")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--stdout",
			dir,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, _, _ := formatTestEnv("")
		_, err = runFormat(context.Background(), positional, flags, env)
		if !errors.Is(err, ErrStdoutBatch) {
			t.Errorf("expected ErrStdoutBatch, got %v", err)
		}
	})

	t.Run("directory batch mirrors tree", func(t *testing.T) {
		clearFormatEnv(t)

		inDir := t.TempDir()
		outDir := filepath.Join(t.TempDir(), "out")
		writeTestFile(t, filepath.Join(inDir, "top.txt"), "top text")
		writeTestFile(t, filepath.Join(inDir, "drafts", "deep.txt"), "deep text")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "plos-one",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--output", outDir,
			"--workers", "2",
			inDir,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, stderr := formatTestEnv("")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v (stderr: %s)", err, stderr.String())
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}

		for _, want := range []string{
			filepath.Join(outDir, "formatted_top.txt"),
			filepath.Join(outDir, "drafts", "formatted_deep.txt"),
		} {
			if _, err := os.Stat(want); err != nil {
				t.Errorf("expected output %s: %v", want, err)
			}
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
	})

	t.Run("unknown format fails with catalog hint", func(t *testing.T) {
		clearFormatEnv(t)

		input := filepath.Join(t.TempDir(), "paper.txt")
		writeTestFile(t, input, "text")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "no-such-journal",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, _, _ := formatTestEnv("")
		_, err = runFormat(context.Background(), positional, flags, env)
		if !errors.Is(err, jfmt.ErrUnknownFormat) {
			t.Fatalf("expected ErrUnknownFormat, got %v", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("expected hint, got %q", err.Error())
		}
	})

	t.Run("no format selected fails", func(t *testing.T) {
		clearFormatEnv(t)

		input := filepath.Join(t.TempDir(), "paper.txt")
		writeTestFile(t, input, "text")

		flags, positional, err := parseFormatFlags([]string{
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, _, _ := formatTestEnv("")
		_, err = runFormat(context.Background(), positional, flags, env)
		if !errors.Is(err, ErrNoFormatSelected) {
			t.Errorf("expected ErrNoFormatSelected, got %v", err)
		}
	})

	t.Run("env journal applies when flag unset", func(t *testing.T) {
		clearFormatEnv(t)
		t.Setenv("JFMT_JOURNAL", "nature")

		input := filepath.Join(t.TempDir(), "paper.txt")
		writeTestFile(t, input, "text body")

		flags, positional, err := parseFormatFlags([]string{
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--stdout",
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("")
		code, err := runFormat(context.Background(), positional, flags, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != ExitSuccess {
			t.Fatalf("code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "FORMATTED FOR: NATURE") {
			t.Errorf("expected env-selected format, got %q", stdout.String())
		}
	})

	t.Run("format flag beats env journal", func(t *testing.T) {
		clearFormatEnv(t)
		t.Setenv("JFMT_JOURNAL", "science")

		input := filepath.Join(t.TempDir(), "paper.txt")
		writeTestFile(t, input, "text body")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--stdout",
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("")
		if _, err := runFormat(context.Background(), positional, flags, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "FORMATTED FOR: NATURE") {
			t.Errorf("expected flag to win, got %q", stdout.String())
		}
	})

	t.Run("invalid worker count rejected before work", func(t *testing.T) {
		clearFormatEnv(t)

		flags, positional, err := parseFormatFlags([]string{"--workers=-1", "paper.txt"})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, _, _ := formatTestEnv("")
		_, err = runFormat(context.Background(), positional, flags, env)
		if !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("expected ErrInvalidWorkerCount, got %v", err)
		}
	})

	t.Run("empty directory reports no files", func(t *testing.T) {
		clearFormatEnv(t)

		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			t.TempDir(),
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, _, _ := formatTestEnv("")
		_, err = runFormat(context.Background(), positional, flags, env)
		if err == nil || !strings.Contains(err.Error(), "no supported manuscript files") {
			t.Errorf("expected no-files error, got %v", err)
		}
	})

	t.Run("quiet suppresses created line", func(t *testing.T) {
		clearFormatEnv(t)

		dir := t.TempDir()
		input := filepath.Join(dir, "paper.txt")
		writeTestFile(t, input, "text body")

		flags, positional, err := parseFormatFlags([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			"--quiet",
			input,
		})
		if err != nil {
			t.Fatalf("parsing flags: %v", err)
		}

		env, stdout, _ := formatTestEnv("")
		if _, err := runFormat(context.Background(), positional, flags, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("expected silent stdout, got %q", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunFormatCmd - Exit codes from the command wrapper
// ---------------------------------------------------------------------------

func TestRunFormatCmd(t *testing.T) {
	t.Run("help exits zero", func(t *testing.T) {
		clearFormatEnv(t)

		env, _, _ := formatTestEnv("")
		if code := runFormatCmd([]string{"--help"}, env); code != ExitSuccess {
			t.Errorf("code = %d, want %d", code, ExitSuccess)
		}
	})

	t.Run("unknown flag exits with usage code", func(t *testing.T) {
		clearFormatEnv(t)

		env, _, _ := formatTestEnv("")
		if code := runFormatCmd([]string{"--bogus"}, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("missing input exits with io code", func(t *testing.T) {
		clearFormatEnv(t)

		env, _, stderr := formatTestEnv("")
		code := runFormatCmd([]string{
			"--format", "nature",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			filepath.Join(t.TempDir(), "missing.txt"),
		}, env)

		if code != ExitIO {
			t.Errorf("code = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "discovering files") {
			t.Errorf("stderr = %q, want discovery error", stderr.String())
		}
	})

	t.Run("unknown format exits with usage code", func(t *testing.T) {
		clearFormatEnv(t)

		input := filepath.Join(t.TempDir(), "paper.txt")
		writeTestFile(t, input, "text")

		env, _, _ := formatTestEnv("")
		code := runFormatCmd([]string{
			"--format", "no-such",
			"--store", filepath.Join(t.TempDir(), "formats.db"),
			input,
		}, env)

		if code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Journal.Default = "science"
		cfg.Store.Path = "/old/store.db"

		mergeFlags(&formatFlags{format: "nature", store: "/new/store.db"}, cfg)

		if cfg.Journal.Default != "nature" {
			t.Errorf("Journal.Default = %q, want %q", cfg.Journal.Default, "nature")
		}
		if cfg.Store.Path != "/new/store.db" {
			t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "/new/store.db")
		}
	})

	t.Run("empty flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Journal.Default = "science"

		mergeFlags(&formatFlags{}, cfg)

		if cfg.Journal.Default != "science" {
			t.Errorf("Journal.Default = %q, want %q", cfg.Journal.Default, "science")
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputDir - Flag beats configured directory
// ---------------------------------------------------------------------------

func TestResolveOutputDir(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.DefaultDir = "/cfg-out"

	if got := resolveOutputDir("/flag-out", cfg); got != "/flag-out" {
		t.Errorf("got %q, want flag value", got)
	}
	if got := resolveOutputDir("", cfg); got != "/cfg-out" {
		t.Errorf("got %q, want config value", got)
	}
}

// ---------------------------------------------------------------------------
// TestWriteContent - Trailing newline handling
// ---------------------------------------------------------------------------

func TestWriteContent(t *testing.T) {
	t.Parallel()

	t.Run("appends missing newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		writeContent(&buf, "no newline")
		if buf.String() != "no newline\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("keeps existing newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		writeContent(&buf, "has newline\n")
		if buf.String() != "has newline\n" {
			t.Errorf("got %q", buf.String())
		}
	})
}
