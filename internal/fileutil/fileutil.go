// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "nature" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "../shared/formats.yaml" -> true (parent path)
//   - "/absolute/config.yaml" -> true (absolute)
//   - "C:\journals\config.yaml" -> true (Windows)
//   - "ieee-access" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// EnsureDir creates the directory and any missing parents. An empty path
// is a no-op so callers can pass the result of filepath.Dir unchecked.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}
