package github

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Event identifies the pull request this run was triggered for.
type Event struct {
	Owner    string
	Repo     string
	PRNumber int
}

//go:embed event.schema.json
var eventSchemaJSON string

var eventSchema = jsonschema.MustCompileString("event.schema.json", eventSchemaJSON)

type eventPayload struct {
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// ReadEvent builds the Event from the GitHub Actions environment: the
// repository from GITHUB_REPOSITORY and the PR number from the webhook
// payload at GITHUB_EVENT_PATH. The payload is schema-validated before use
// since it crosses a trust boundary.
func ReadEvent() (Event, error) {
	repoFull := os.Getenv("GITHUB_REPOSITORY")
	owner, repo, found := strings.Cut(repoFull, "/")
	if !found || owner == "" || repo == "" {
		return Event{}, fmt.Errorf("GITHUB_REPOSITORY is not set to owner/name (got %q)", repoFull)
	}

	eventPath := os.Getenv("GITHUB_EVENT_PATH")
	if eventPath == "" {
		return Event{}, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return Event{}, fmt.Errorf("failed to read event payload: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return Event{}, fmt.Errorf("invalid event payload: %w", err)
	}
	if err := eventSchema.Validate(generic); err != nil {
		return Event{}, fmt.Errorf("event payload failed schema validation: %w", err)
	}

	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Event{}, fmt.Errorf("invalid event payload: %w", err)
	}

	return Event{Owner: owner, Repo: repo, PRNumber: payload.PullRequest.Number}, nil
}
