package rules

import (
	"regexp"
)

var k8sImageRE = regexp.MustCompile(`(?m)image:\s*([\w./-]+)(?::([\w.-]+))?`)

// CheckKubernetesImages scans manifest image: references. The floating-tag
// policy here is narrower than the Dockerfile one on purpose: bare alphabetic
// tags other than "latest" are common for in-cluster aliases and stay quiet.
func CheckKubernetesImages(blob string) []string {
	var warnings []string
	for _, m := range k8sImageRE.FindAllStringSubmatch(blob, -1) {
		image, tag := m[1], m[2]
		switch {
		case tag == "":
			warnings = append(warnings, warnf("kubernetes image %q has no version tag", image))
		case tag == "latest":
			warnings = append(warnings, warnf("kubernetes image %q uses floating tag \"latest\"", image))
		case bareIntTagRE.MatchString(tag) || majorMinorTagRE.MatchString(tag):
			warnings = append(warnings, warnf("kubernetes image %q tag %q is not fully qualified", image, tag))
		}
	}
	return warnings
}
