package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeName reduces a free-text scenario name to a filesystem-safe
// form: path separators and whitespace collapse to single underscores,
// anything outside [A-Za-z0-9_.-] is removed, and leading/trailing dots
// and underscores are stripped. An empty result falls back to
// "scenario" so output filenames never lose their stem.
func SanitizeName(name string) string {
	s := strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
	s = unsafeRe.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")
	if s == "" {
		return "scenario"
	}
	return s
}
