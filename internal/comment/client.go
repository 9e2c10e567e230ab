package comment

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client is the part of the GitHub issues API the publisher needs.
type Client interface {
	ListIssueComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	UpdateComment(ctx context.Context, owner, repo string, commentID int64, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type githubClient struct {
	gh *github.Client
}

// NewClient returns a token authenticated Client. An empty baseURL uses
// api.github.com; otherwise it is the REST root, as in GITHUB_API_URL.
func NewClient(ctx context.Context, token, baseURL string) (Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	gh := github.NewClient(tc)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse github api url %q: %w", baseURL, err)
		}
		gh.BaseURL = u
	}

	return &githubClient{gh: gh}, nil
}

func (c *githubClient) ListIssueComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error) {
	return c.gh.Issues.ListComments(ctx, owner, repo, number, opts)
}

func (c *githubClient) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	return c.gh.Issues.CreateComment(ctx, owner, repo, number, comment)
}

func (c *githubClient) UpdateComment(ctx context.Context, owner, repo string, commentID int64, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	return c.gh.Issues.EditComment(ctx, owner, repo, commentID, comment)
}
