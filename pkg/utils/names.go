package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// MediaExtensions are probed in order when resolving a logo or picture file.
var MediaExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// MediaBaseName turns "Manchester  United" into "Manchester_United".
func MediaBaseName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// FindMedia looks for name's image under dir. Each extension is tried with
// the exact base name, then lower-cased, before moving to the next one. It
// returns the path relative to dir, or "" when no file matches.
func FindMedia(dir, name string) string {
	base := MediaBaseName(name)
	if base == "" {
		return ""
	}
	for _, ext := range MediaExtensions {
		for _, candidate := range []string{base, strings.ToLower(base)} {
			file := candidate + ext
			if info, err := os.Stat(filepath.Join(dir, file)); err == nil && !info.IsDir() {
				return file
			}
		}
	}
	return ""
}

// ParseBool accepts the truthy spellings found in fixture files.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// MediaURL joins a public media prefix with a stored relative path. Empty
// paths stay empty.
func MediaURL(prefix, path string) string {
	if path == "" {
		return ""
	}
	if prefix == "" {
		return path
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}
