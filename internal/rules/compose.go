package rules

import (
	"regexp"
)

var composeImageRE = regexp.MustCompile(`(?m)image:\s*['"]?([\w./-]+)(?::([\w.-]+))?['"]?`)

// CheckComposeImages scans docker-compose service image references, which
// unlike kubernetes manifests may quote the image string. Same tag policy as
// CheckKubernetesImages.
func CheckComposeImages(blob string) []string {
	var warnings []string
	for _, m := range composeImageRE.FindAllStringSubmatch(blob, -1) {
		image, tag := m[1], m[2]
		switch {
		case tag == "":
			warnings = append(warnings, warnf("compose image %q has no version tag", image))
		case tag == "latest":
			warnings = append(warnings, warnf("compose image %q uses floating tag \"latest\"", image))
		case bareIntTagRE.MatchString(tag) || majorMinorTagRE.MatchString(tag):
			warnings = append(warnings, warnf("compose image %q tag %q is not fully qualified", image, tag))
		}
	}
	return warnings
}
