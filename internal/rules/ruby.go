package rules

import (
	"regexp"
	"strings"
)

var gemRE = regexp.MustCompile(`gem\s+['"]([\w-]+)['"]\s*,\s*['"]([^'"]+)['"]`)

// CheckRubyGems scans Gemfile gem declarations for pessimistic and range
// version constraints.
func CheckRubyGems(blob string) []string {
	var warnings []string
	for _, m := range gemRE.FindAllStringSubmatch(blob, -1) {
		name, version := m[1], m[2]
		if strings.Contains(version, "~>") || strings.Contains(version, ">") || strings.Contains(version, "<") {
			warnings = append(warnings, warnf("ruby gem %q uses floating version %q%s", name, version, pinHint(version)))
		}
	}
	return warnings
}
