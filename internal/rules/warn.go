package rules

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

func warnf(format string, args ...any) string {
	return "⚠️ " + fmt.Sprintf(format, args...)
}

// pinHint suggests the concrete version embedded in a floating constraint,
// e.g. "^1.2.3" yields a hint to pin "1.2.3". Returns "" when the constraint
// does not wrap a parseable version.
func pinHint(constraint string) string {
	v := strings.TrimLeft(constraint, "^~><=! ")
	parsed, err := semver.StrictNewVersion(v)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (pin to %q)", parsed.String())
}
