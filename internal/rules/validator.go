package rules

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Spec declares one validator: which file names it applies to and the check
// to run on the assembled blob. Checks must be pure so per-file results are
// independent of processing order.
type Spec struct {
	Name       string
	Extensions []string
	Patterns   []string
	Check      func(blob string) []string
}

// Matches reports whether the validator applies to the given path, either by
// extension suffix or by glob pattern (brace alternation supported). Patterns
// are tried against both the full path and the base name.
func (s Spec) Matches(filePath string) bool {
	for _, ext := range s.Extensions {
		if strings.HasSuffix(filePath, ext) {
			return true
		}
	}
	base := path.Base(filePath)
	for _, pattern := range s.Patterns {
		if ok, err := doublestar.Match(pattern, filePath); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
