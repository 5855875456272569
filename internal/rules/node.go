package rules

import (
	"regexp"
	"strings"
)

var nodeDepRE = regexp.MustCompile(`"((?:@[\w.-]+/)?[\w.-]+)"\s*:\s*"([^"]+)"`)

// CheckNodeManifest scans package.json-style "name": "version" pairs and
// flags caret, tilde and wildcard constraints. Matching is best-effort text
// scanning; non-dependency pairs only ever match when their value looks like
// a floating constraint.
func CheckNodeManifest(blob string) []string {
	var warnings []string
	for _, m := range nodeDepRE.FindAllStringSubmatch(blob, -1) {
		name, version := m[1], m[2]
		if strings.HasPrefix(version, "^") || strings.HasPrefix(version, "~") || version == "*" {
			warnings = append(warnings, warnf("npm dependency %q uses floating version %q%s", name, version, pinHint(version)))
		}
	}
	return warnings
}
