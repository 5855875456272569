package diff

import "testing"

const sampleDiff = "diff --git a/Dockerfile b/Dockerfile\n" +
	"index 123..456 100644\n" +
	"--- a/Dockerfile\n" +
	"+++ b/Dockerfile\n" +
	"@@ -1,2 +1,2 @@\n" +
	" FROM golang:1.22.5\n" +
	"-RUN make\n" +
	"+RUN make build\n"

const deletedDiff = "diff --git a/old.txt b/old.txt\n" +
	"deleted file mode 100644\n" +
	"--- a/old.txt\n" +
	"+++ /dev/null\n" +
	"@@ -1,1 +0,0 @@\n" +
	"-goodbye\n"

func TestParseUnified(t *testing.T) {
	files, err := ParseUnified(sampleDiff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Path != "Dockerfile" {
		t.Fatalf("unexpected path: %s", files[0].Path)
	}
	if len(files[0].Chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(files[0].Chunks))
	}
	lines := files[0].Chunks[0].Lines
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Kind != Context || lines[0].Text != "FROM golang:1.22.5" {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Kind != Removed {
		t.Fatalf("expected removed line, got %+v", lines[1])
	}
	if lines[2].Kind != Added || lines[2].Text != "RUN make build" {
		t.Fatalf("unexpected added line: %+v", lines[2])
	}
}

func TestParseUnifiedDeletedFile(t *testing.T) {
	files, err := ParseUnified(deletedDiff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if !files[0].Deleted() {
		t.Fatalf("expected deleted sentinel, got path %q", files[0].Path)
	}
}

func TestParseUnifiedMultipleFiles(t *testing.T) {
	files, err := ParseUnified(sampleDiff + deletedDiff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "Dockerfile" || !files[1].Deleted() {
		t.Fatalf("unexpected files: %q, %q", files[0].Path, files[1].Path)
	}
}

func TestParseUnifiedEmpty(t *testing.T) {
	files, err := ParseUnified("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}
