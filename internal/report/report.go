package report

import (
	"fmt"
	"strings"
)

// Title marks comments posted by this tool.
const Title = "## Version Guard"

const pinningGuidance = `### Pinning guidance

Every dependency should name one exact version, so that a rebuild of the same
commit installs the same artifacts:

` + "```" + `
"lodash": "4.17.21"          # package.json
requests==2.31.0             # requirements.txt
FROM golang:1.22.5-alpine3.20
image: registry.local/api:1.4.2
uses: actions/checkout@v4.1.7
` + "```"

const migrationGuidance = `### Migration guidance

Wrap migrations in a transactional block and guard each statement so the
migration can be re-run safely:

` + "```sql" + `
DO $$ BEGIN
  CREATE TABLE IF NOT EXISTS orders (id serial PRIMARY KEY);
  ALTER TABLE orders ADD COLUMN IF NOT EXISTS total numeric;
END $$;
` + "```"

// Render formats the aggregated issue list as one Markdown comment body with
// the findings first and the fixed guidance sections after.
func Render(issues []string) string {
	var b strings.Builder
	b.WriteString(Title)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Found %d issue(s) in this pull request:\n\n", len(issues))
	for _, issue := range issues {
		b.WriteString("- ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pinningGuidance)
	b.WriteString("\n\n")
	b.WriteString(migrationGuidance)
	b.WriteString("\n")
	return b.String()
}
