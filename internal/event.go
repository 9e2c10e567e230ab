package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// githubEvent holds the parts of a GitHub Actions event payload that can
// carry the issue or pull request number.
type githubEvent struct {
	Number      int `json:"number"`
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue struct {
		Number int `json:"number"`
	} `json:"issue"`
	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

func (e githubEvent) issueNumber() int {
	switch {
	case e.Issue.Number != 0:
		return e.Issue.Number
	case e.PullRequest.Number != 0:
		return e.PullRequest.Number
	}
	return e.Number
}

// DetectRunConfig reads the invocation context from the GitHub Actions
// environment. Missing values are left zero; callers validate after
// applying overrides. When the event payload cannot be read, the values
// taken from the environment are still returned with the error.
func DetectRunConfig() (RunConfig, error) {
	rc := RunConfig{
		SHA: os.Getenv("GITHUB_SHA"),
	}

	if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
		parts := strings.SplitN(repo, "/", 2)
		if len(parts) == 2 {
			rc.Owner = parts[0]
			rc.Repo = parts[1]
		}
	}

	path := os.Getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return rc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rc, fmt.Errorf("read github event payload: %w", err)
	}

	var event githubEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return rc, fmt.Errorf("decode github event payload: %w", err)
	}

	rc.IssueNumber = event.issueNumber()
	if rc.Owner == "" || rc.Repo == "" {
		rc.Owner = event.Repository.Owner.Login
		rc.Repo = event.Repository.Name
	}
	return rc, nil
}
