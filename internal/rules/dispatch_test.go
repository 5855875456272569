package rules

import (
	"strings"
	"testing"

	"github.com/herniqeu/version-guard/internal/diff"
)

func addedFile(path string, lines ...string) diff.ChangedFile {
	chunk := diff.Chunk{}
	for _, line := range lines {
		chunk.Lines = append(chunk.Lines, diff.Line{Kind: diff.Added, Text: line})
	}
	return diff.ChangedFile{Path: path, Chunks: []diff.Chunk{chunk}}
}

func TestEngineRunFileThenValidatorOrder(t *testing.T) {
	files := []diff.ChangedFile{
		addedFile("Dockerfile", "FROM nginx:latest"),
		addedFile("package.json", `"lodash": "^1.0.0"`),
	}
	issues := NewEngine(nil).Run(files)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if !strings.HasPrefix(issues[0], "`Dockerfile`") {
		t.Fatalf("expected Dockerfile issue first: %s", issues[0])
	}
	if !strings.HasPrefix(issues[1], "`package.json`") {
		t.Fatalf("expected package.json issue second: %s", issues[1])
	}
}

func TestEngineRunIdempotent(t *testing.T) {
	files := []diff.ChangedFile{
		addedFile("requirements.txt", "flask", "django>=4.0"),
		addedFile("db/migrations/0001.sql", "CREATE TABLE t (id int);"),
	}
	engine := NewEngine(nil)
	first := engine.Run(files)
	second := engine.Run(files)
	if len(first) != len(second) {
		t.Fatalf("issue counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("issue %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestEngineRunSkipsDeletedFiles(t *testing.T) {
	file := addedFile(diff.DeletedPath, "FROM nginx:latest")
	issues := NewEngine(nil).Run([]diff.ChangedFile{file})
	if len(issues) != 0 {
		t.Fatalf("deleted file must produce no issues, got %v", issues)
	}
}

func TestEngineRunIgnoreGlobs(t *testing.T) {
	files := []diff.ChangedFile{
		addedFile("vendor/Dockerfile", "FROM nginx"),
		addedFile("Dockerfile", "FROM nginx"),
	}
	issues := NewEngine([]string{"vendor/**"}).Run(files)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if !strings.HasPrefix(issues[0], "`Dockerfile`") {
		t.Fatalf("unexpected issue: %s", issues[0])
	}
}

func TestEngineRunMigrationPath(t *testing.T) {
	file := addedFile("db/migrations/0002_add.sql", "ALTER TABLE t ADD COLUMN x int;")
	issues := NewEngine(nil).Run([]diff.ChangedFile{file})
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if !strings.Contains(issues[0], "transactional wrapper") {
		t.Fatalf("unexpected issue: %s", issues[0])
	}
}

func TestEngineRunOverlappingValidators(t *testing.T) {
	// docker-compose.yml matches both the kubernetes validator (by extension)
	// and the compose validator (by pattern); both run, no dedup.
	file := addedFile("docker-compose.yml", "    image: postgres:latest")
	issues := NewEngine(nil).Run([]diff.ChangedFile{file})
	if len(issues) != 2 {
		t.Fatalf("expected overlapping validators to both fire, got %v", issues)
	}
}

func TestAssembleDropsRemovedLines(t *testing.T) {
	file := diff.ChangedFile{
		Path: "Dockerfile",
		Chunks: []diff.Chunk{
			{Lines: []diff.Line{
				{Kind: diff.Context, Text: "FROM golang:1.22.5"},
				{Kind: diff.Removed, Text: "RUN make"},
				{Kind: diff.Added, Text: "RUN make build"},
			}},
			{Lines: []diff.Line{
				{Kind: diff.Added, Text: "CMD [\"/app\"]"},
			}},
		},
	}
	blob := Assemble(file)
	want := "FROM golang:1.22.5\nRUN make build\nCMD [\"/app\"]"
	if blob != want {
		t.Fatalf("unexpected blob:\n%q\nwant:\n%q", blob, want)
	}
}

func TestSpecMatches(t *testing.T) {
	spec := Spec{
		Extensions: []string{".yaml"},
		Patterns:   []string{"docker-compose*.{yml,yaml}", ".github/workflows/*.{yml,yaml}"},
	}
	cases := []struct {
		path string
		want bool
	}{
		{"k8s/deploy.yaml", true},
		{"docker-compose.yml", true},
		{"deploy/docker-compose.prod.yml", true},
		{".github/workflows/ci.yml", true},
		{"README.md", false},
	}
	for _, tc := range cases {
		if got := spec.Matches(tc.path); got != tc.want {
			t.Fatalf("Matches(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
