package rules

import (
	"regexp"
)

var (
	usesRE      = regexp.MustCompile(`(?m)uses:\s*([\w./-]+)@([\w.-]+)`)
	actionTagRE = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)
)

// CheckActionsUses scans workflow uses: references. Anything that is not an
// exact vMAJOR.MINOR.PATCH tag is flagged, including branch names and bare
// major tags like v4.
func CheckActionsUses(blob string) []string {
	var warnings []string
	for _, m := range usesRE.FindAllStringSubmatch(blob, -1) {
		action, ref := m[1], m[2]
		if ref == "main" || ref == "master" {
			warnings = append(warnings, warnf("github action %q is pinned to branch %q", action, ref))
			continue
		}
		if !actionTagRE.MatchString(ref) {
			warnings = append(warnings, warnf("github action %q ref %q is not an exact vX.Y.Z tag", action, ref))
		}
	}
	return warnings
}
