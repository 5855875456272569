package rules

import (
	"regexp"
	"strings"
)

var (
	gradleDepRE    = regexp.MustCompile(`['"]([\w.-]+):([\w.-]+):([\w.+-]+)['"]`)
	mavenVersionRE = regexp.MustCompile(`<version>\s*([^<]+?)\s*</version>`)
)

// CheckJavaBuild scans gradle group:artifact:version triples and maven
// <version> tags. The SNAPSHOT/RELEASE/LATEST maven markers are matched
// case-sensitively; that is how maven itself treats them.
func CheckJavaBuild(blob string) []string {
	var warnings []string
	for _, m := range gradleDepRE.FindAllStringSubmatch(blob, -1) {
		artifact := m[1] + ":" + m[2]
		version := m[3]
		if strings.Contains(version, "+") || strings.HasSuffix(version, ".+") || strings.Contains(version, "latest") {
			warnings = append(warnings, warnf("gradle dependency %q uses dynamic version %q", artifact, version))
		}
	}
	for _, m := range mavenVersionRE.FindAllStringSubmatch(blob, -1) {
		version := m[1]
		if strings.Contains(version, "SNAPSHOT") || strings.Contains(version, "RELEASE") || strings.Contains(version, "LATEST") {
			warnings = append(warnings, warnf("maven version %q is not a fixed release", version))
		}
	}
	return warnings
}
