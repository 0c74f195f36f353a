// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-jfmt/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-jfmt) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-jfmt") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFormatNotFound returns hints for journal format not found errors.
func ForFormatNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnsupportedFile returns hints for unsupported manuscript file errors.
func ForUnsupportedFile(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported: " + strings.Join(supported, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFormatStore returns hints for format store open errors.
func ForFormatStore() string {
	return format("check the directory is writable, or point --store at another location")
}

// ForBuiltinRemove returns a hint when removal targets a built-in format.
func ForBuiltinRemove() string {
	return format("only custom formats can be removed; list them with 'jfmt formats list --custom'")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
