package rules

import (
	"path"
	"regexp"
	"strings"
)

var (
	wrapperRE = regexp.MustCompile(`(?is)DO\s+\$\$\s*BEGIN\b.*\bEND\s*\$\$`)
	beginRE   = regexp.MustCompile(`(?i)\bBEGIN\b`)
	endRE     = regexp.MustCompile(`(?i)\bEND\b`)

	guardTokenRE  = regexp.MustCompile(`(?i)IF\s+(NOT\s+)?EXISTS`)
	insertGuardRE = regexp.MustCompile(`(?i)(WHERE\s+NOT\s+EXISTS|IF\s+(NOT\s+)?EXISTS)`)
)

type migrationRule struct {
	statement *regexp.Regexp
	guard     *regexp.Regexp
	message   string
}

// Guard detection is block-wide, not statement-local: a guard anywhere in the
// BEGIN..END body silences every rule, even when it protects a different
// statement. That imprecision is inherited from the policy this tool
// enforces and is kept deliberately.
var migrationRules = []migrationRule{
	{regexp.MustCompile(`(?i)CREATE\s+TABLE`), guardTokenRE, "CREATE TABLE without IF NOT EXISTS guard"},
	{regexp.MustCompile(`(?i)ALTER\s+TABLE`), guardTokenRE, "ALTER TABLE without IF [NOT] EXISTS guard"},
	{regexp.MustCompile(`(?i)INSERT\s+INTO`), insertGuardRE, "INSERT INTO without WHERE/IF NOT EXISTS guard"},
	{regexp.MustCompile(`(?i)DROP\s+TABLE`), guardTokenRE, "DROP TABLE without IF EXISTS guard"},
}

// IsMigrationPath reports whether migration checks apply to the file.
func IsMigrationPath(filePath string) bool {
	ext := path.Ext(filePath)
	if ext == ".sql" || ext == ".psql" {
		return true
	}
	for _, segment := range strings.Split(path.Dir(filePath), "/") {
		if segment == "migrations" {
			return true
		}
	}
	return false
}

// CheckMigration enforces a two-stage policy on migration text: the change
// must sit inside a DO $$ BEGIN ... END $$ wrapper, and risky statements
// inside the wrapper must be idempotency-guarded. Without the wrapper the
// statement rules are not evaluated at all.
func CheckMigration(blob string) []string {
	text := stripDiffMarkers(blob)
	if !wrapperRE.MatchString(text) {
		return []string{warnf("migration is missing a DO $$ BEGIN ... END $$ transactional wrapper")}
	}
	inner := innerBlock(text)
	var warnings []string
	for _, rule := range migrationRules {
		if rule.statement.MatchString(inner) && !rule.guard.MatchString(inner) {
			warnings = append(warnings, warnf("%s", rule.message))
		}
	}
	return warnings
}

// innerBlock returns the text strictly between the first BEGIN and the first
// END that follows it.
func innerBlock(text string) string {
	begin := beginRE.FindStringIndex(text)
	if begin == nil {
		return ""
	}
	rest := text[begin[1]:]
	end := endRE.FindStringIndex(rest)
	if end == nil {
		return rest
	}
	return rest[:end[0]]
}

func stripDiffMarkers(blob string) string {
	lines := strings.Split(blob, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "+")
	}
	return strings.Join(lines, "\n")
}
