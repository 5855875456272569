package rules

import (
	"strings"

	"github.com/herniqeu/version-guard/internal/diff"
)

// Assemble rebuilds the post-change text of one file's changed regions:
// added and context lines in original order, removed lines dropped. The
// result is what validators see, so guard checks reason about the file as
// it looks after the change, not about the diff of it.
func Assemble(file diff.ChangedFile) string {
	var chunks []string
	for _, chunk := range file.Chunks {
		var lines []string
		for _, line := range chunk.Lines {
			if line.Kind == diff.Removed {
				continue
			}
			lines = append(lines, line.Text)
		}
		if len(lines) > 0 {
			chunks = append(chunks, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(chunks, "\n")
}
