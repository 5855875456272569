package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FixtureClient serves the diff from a local fixture directory and swallows
// comment posts. Used when VG_MOCK=1 so CLI tests run without the API.
type FixtureClient struct {
	Root string
}

func NewFixtureClient(root string) FixtureClient {
	return FixtureClient{Root: root}
}

func (f FixtureClient) PRDiff(ctx context.Context, ev Event) (string, error) {
	_ = ctx
	path := filepath.Join(f.Root, "pr_diff.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("no diff fixture at %s: %w", path, err)
	}
	return string(data), nil
}

func (f FixtureClient) PostComment(ctx context.Context, ev Event, body string) error {
	_ = ctx
	_ = ev
	_ = body
	return nil
}
