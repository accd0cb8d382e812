package cli

import (
	"path/filepath"
)

// derivedPath names an output after the input's stem, in the working directory
func derivedPath(input, suffix string) string {
	return filepath.Base(trimExt(input)) + suffix
}

func trimExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
