package jfmt

import (
	"path/filepath"
	"strings"
)

// defaultSourceName is used when no source file name is supplied.
const defaultSourceName = "manuscript"

// DownloadName derives the output file name from the source file name: any
// directory part and extension are stripped, and the base gains a
// "formatted_" prefix and a ".txt" suffix. An empty or extension-only
// source falls back to "manuscript".
func DownloadName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = defaultSourceName
	}
	return "formatted_" + base + ".txt"
}
