package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/hints"
)

// maxWorkers caps the batch worker count.
const maxWorkers = 32

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToFormat represents a single manuscript to process.
type FileToFormat struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all supported manuscript files to format.
// A single file must carry a supported extension; directories are walked
// recursively and unsupported files are skipped.
func discoverFiles(inputPath, outputDir string) ([]FileToFormat, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !isSupportedFile(inputPath) {
			return nil, fmt.Errorf("%w: %q%s",
				extract.ErrUnsupportedFile, filepath.Ext(inputPath),
				hints.ForUnsupportedFile(extract.SupportedExtensions()))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToFormat{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToFormat
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isSupportedFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToFormat{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// isSupportedFile reports whether the extraction layer handles this file.
func isSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range extract.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// resolveOutputPath determines the formatted output path for a manuscript.
// The file name always follows the download convention
// (formatted_<base>.txt); outputDir places it, and batch runs mirror the
// input tree below baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := jfmt.DownloadName(inputPath)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if strings.HasSuffix(outputDir, ".txt") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, name)
		}
	}

	return filepath.Join(outputDir, name)
}

// resolveInputPath determines the input from args or config.
func resolveInputPath(args []string, defaultDir string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if defaultDir != "" {
		return defaultDir, nil
	}
	return "", ErrNoInput
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
