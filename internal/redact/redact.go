// Package redact scrubs credential-shaped strings from report bodies before
// they are posted as PR comments. Diffs routinely quote .env files, lockfile
// URLs and CI config, so anything the linter echoes back may embed a secret.
package redact

import "regexp"

const Redacted = "[REDACTED]"

var (
	ghToken      = regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{30,}`)
	awsAccessKey = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
	jwtToken     = regexp.MustCompile(`eyJ[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+`)
	genericToken = regexp.MustCompile(`(?i)(token|secret|api[_-]?key|access[_-]?key)["'\s:=]+[A-Za-z0-9/+=]{16,}`)
	urlParams    = regexp.MustCompile(`([?&](token|key|secret|sig|signature|access_token|auth)=)[^&\s]+`)
)

func Redact(input string) string {
	if input == "" {
		return input
	}
	output := input
	output = ghToken.ReplaceAllString(output, Redacted)
	output = awsAccessKey.ReplaceAllString(output, Redacted)
	output = jwtToken.ReplaceAllString(output, Redacted)
	output = genericToken.ReplaceAllString(output, Redacted)
	output = urlParams.ReplaceAllString(output, "${1}"+Redacted)
	return output
}

func RedactOptional(input string, enabled bool) string {
	if !enabled {
		return input
	}
	return Redact(input)
}
