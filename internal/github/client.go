package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v61/github"
)

// DiffSource retrieves the full unified diff of a pull request.
type DiffSource interface {
	PRDiff(ctx context.Context, ev Event) (string, error)
}

// CommentSink posts one aggregated report comment on a pull request.
type CommentSink interface {
	PostComment(ctx context.Context, ev Event, body string) error
}

// Client talks to the GitHub API. No retries: every call either succeeds
// once or fails the whole run.
type Client struct {
	gh *gh.Client
}

const defaultAPIURL = "https://api.github.com"

func NewClient(token string, baseURL string) (*Client, error) {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if baseURL != "" && baseURL != defaultAPIURL {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
		}
	}
	return &Client{gh: client}, nil
}

func (c *Client) PRDiff(ctx context.Context, ev Event) (string, error) {
	raw, _, err := c.gh.PullRequests.GetRaw(ctx, ev.Owner, ev.Repo, ev.PRNumber, gh.RawOptions{Type: gh.Diff})
	if err != nil {
		return "", fmt.Errorf("failed to fetch diff for %s/%s#%d: %w", ev.Owner, ev.Repo, ev.PRNumber, err)
	}
	return raw, nil
}

func (c *Client) PostComment(ctx context.Context, ev Event, body string) error {
	comment := &gh.IssueComment{Body: gh.String(body)}
	if _, _, err := c.gh.Issues.CreateComment(ctx, ev.Owner, ev.Repo, ev.PRNumber, comment); err != nil {
		return fmt.Errorf("failed to post comment on %s/%s#%d: %w", ev.Owner, ev.Repo, ev.PRNumber, err)
	}
	return nil
}
