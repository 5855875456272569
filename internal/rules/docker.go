package rules

import (
	"regexp"
)

var (
	// Leading "+" tolerated so raw diff text can be fed in directly.
	fromLineRE = regexp.MustCompile(`(?mi)^\+?\s*FROM\s+([\w./-]+)(?::([\w.-]+))?`)

	bareIntTagRE    = regexp.MustCompile(`^\d+$`)
	majorMinorTagRE = regexp.MustCompile(`^\d+\.\d+$`)
	alphaTagRE      = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Tags that track a moving target even though they look specific.
var floatingAliases = map[string]bool{
	"latest":  true,
	"stable":  true,
	"rolling": true,
	"alpine":  true,
}

// CheckDockerfile scans FROM lines for missing or floating image tags. One
// warning per offending FROM line, in line order.
func CheckDockerfile(blob string) []string {
	var warnings []string
	for _, m := range fromLineRE.FindAllStringSubmatch(blob, -1) {
		image, tag := m[1], m[2]
		switch {
		case tag == "":
			warnings = append(warnings, warnf("docker image %q has no version tag", image))
		case floatingAliases[tag]:
			warnings = append(warnings, warnf("docker image %q uses floating tag %q", image, tag))
		case bareIntTagRE.MatchString(tag) || majorMinorTagRE.MatchString(tag):
			warnings = append(warnings, warnf("docker image %q tag %q is not fully qualified", image, tag))
		case alphaTagRE.MatchString(tag):
			warnings = append(warnings, warnf("docker image %q uses floating tag %q", image, tag))
		}
	}
	return warnings
}
