package diff

import (
	"strings"
)

// DeletedPath is the destination path git uses for a deleted file.
const DeletedPath = "/dev/null"

type LineKind int

const (
	Context LineKind = iota
	Added
	Removed
)

type Line struct {
	Kind LineKind
	Text string
}

type Chunk struct {
	Lines []Line
}

type ChangedFile struct {
	Path   string
	Chunks []Chunk
}

// Deleted reports whether the file has no destination in the new tree.
func (f ChangedFile) Deleted() bool {
	return f.Path == "" || f.Path == DeletedPath
}

// ParseUnified splits a unified diff into per-file chunks of classified lines.
// Line text is stored without the leading +/-/space marker.
func ParseUnified(input string) ([]ChangedFile, error) {
	lines := strings.Split(input, "\n")
	var files []ChangedFile
	var current *ChangedFile
	inHunk := false

	flush := func() {
		if current != nil {
			files = append(files, *current)
		}
		current = nil
		inHunk = false
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git ") {
			flush()
			current = &ChangedFile{Path: parsePath(line)}
			continue
		}
		if current == nil {
			continue
		}
		if strings.HasPrefix(line, "+++ ") {
			current.Path = parseDestPath(line)
			continue
		}
		if strings.HasPrefix(line, "@@") {
			current.Chunks = append(current.Chunks, Chunk{})
			inHunk = true
			continue
		}
		if !inHunk {
			continue
		}
		chunk := &current.Chunks[len(current.Chunks)-1]
		switch {
		case strings.HasPrefix(line, "+"):
			chunk.Lines = append(chunk.Lines, Line{Kind: Added, Text: line[1:]})
		case strings.HasPrefix(line, "-"):
			chunk.Lines = append(chunk.Lines, Line{Kind: Removed, Text: line[1:]})
		case strings.HasPrefix(line, " "):
			chunk.Lines = append(chunk.Lines, Line{Kind: Context, Text: line[1:]})
		case strings.HasPrefix(line, "\\"):
			// "\ No newline at end of file" carries no content.
		}
	}
	flush()
	return files, nil
}

func parsePath(line string) string {
	parts := strings.Split(line, " ")
	if len(parts) < 4 {
		return ""
	}
	return strings.TrimPrefix(parts[3], "b/")
}

func parseDestPath(line string) string {
	dest := strings.TrimPrefix(line, "+++ ")
	if tab := strings.IndexByte(dest, '\t'); tab >= 0 {
		dest = dest[:tab]
	}
	if dest == DeletedPath {
		return DeletedPath
	}
	return strings.TrimPrefix(dest, "b/")
}
