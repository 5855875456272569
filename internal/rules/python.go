package rules

import (
	"regexp"
	"strings"
)

var pipLineRE = regexp.MustCompile(`(?m)^\s*([A-Za-z0-9][A-Za-z0-9._-]*)(?:\[[\w,.-]*\])?\s*([=<>!~]=?[^#\s]*)?\s*(?:#.*)?$`)

// CheckPythonRequirements scans requirements.txt lines for missing or
// range-style version constraints.
func CheckPythonRequirements(blob string) []string {
	var warnings []string
	for _, m := range pipLineRE.FindAllStringSubmatch(blob, -1) {
		name, constraint := m[1], m[2]
		switch {
		case constraint == "":
			warnings = append(warnings, warnf("python dependency %q has no version constraint", name))
		case strings.Contains(constraint, "~=") || strings.Contains(constraint, ">") || strings.Contains(constraint, "<"):
			warnings = append(warnings, warnf("python dependency %q uses floating constraint %q%s", name, constraint, pinHint(constraint)))
		}
	}
	return warnings
}
