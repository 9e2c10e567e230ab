package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	intm "benchmark-reporter/internal"
)

const (
	// BotLogin is the author of comments posted with the Actions token.
	BotLogin = "github-actions[bot]"
	// CommentsPerPage is the page size of the single list request. It is the
	// API maximum rather than the default of 30; later pages are still never
	// fetched.
	CommentsPerPage = 100
)

type Action string

const (
	ActionNone    Action = "none"
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Result is the outcome of one create or update call.
type Result struct {
	CommentID int64
	URL       string
	Err       error
}

type Outcome struct {
	Action  Action
	Results []Result
}

func (o Outcome) CommentIDs() []int64 {
	ids := make([]int64, 0, len(o.Results))
	for _, r := range o.Results {
		ids = append(ids, r.CommentID)
	}
	return ids
}

func (o Outcome) Failed() []Result {
	var failed []Result
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

func (o Outcome) err() error {
	var errs []error
	for _, r := range o.Failed() {
		errs = append(errs, fmt.Errorf("comment %d: %w", r.CommentID, r.Err))
	}
	return errors.Join(errs...)
}

// Publisher keeps a single report comment per pull request up to date.
type Publisher struct {
	client Client
	log    zerolog.Logger
	title  string
}

func NewPublisher(client Client, log zerolog.Logger, title string) *Publisher {
	return &Publisher{
		client: client,
		log:    log,
		title:  title,
	}
}

// IsReportComment reports whether c was posted by the bot and has title as
// one of its lines. Lines are compared exactly.
func IsReportComment(c *github.IssueComment, title string) bool {
	if c.GetUser().GetLogin() != BotLogin {
		return false
	}
	for _, line := range strings.Split(c.GetBody(), "\n") {
		if line == title {
			return true
		}
	}
	return false
}

// Publish creates the report comment, or overwrites every existing one with
// body. Only the first page of comments is searched.
func (p *Publisher) Publish(ctx context.Context, rc intm.RunConfig, body string) (Outcome, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: CommentsPerPage},
	}

	comments, _, err := p.client.ListIssueComments(ctx, rc.Owner, rc.Repo, rc.IssueNumber, opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", intm.ErrCommentList, err)
	}

	var targets []*github.IssueComment
	for _, c := range comments {
		if IsReportComment(c, p.title) {
			targets = append(targets, c)
		}
	}

	p.log.Debug().
		Int("comments", len(comments)).
		Int("matches", len(targets)).
		Int("pr", rc.IssueNumber).
		Msg("searched existing comments")

	if len(targets) == 0 {
		return p.create(ctx, rc, body)
	}
	return p.updateAll(ctx, rc, targets, body)
}

func (p *Publisher) create(ctx context.Context, rc intm.RunConfig, body string) (Outcome, error) {
	p.log.Info().Int("pr", rc.IssueNumber).Msg("creating benchmark report comment")

	created, _, err := p.client.CreateComment(ctx, rc.Owner, rc.Repo, rc.IssueNumber, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return Outcome{Action: ActionCreated, Results: []Result{{Err: err}}},
			fmt.Errorf("%w: %w", intm.ErrCommentCreateFailed, err)
	}

	p.log.Info().
		Int64("comment_id", created.GetID()).
		Str("url", created.GetHTMLURL()).
		Msg("benchmark report comment created")

	return Outcome{
		Action:  ActionCreated,
		Results: []Result{{CommentID: created.GetID(), URL: created.GetHTMLURL()}},
	}, nil
}

// updateAll edits every target concurrently. All calls run to completion
// even if some fail, and every result is reported.
func (p *Publisher) updateAll(ctx context.Context, rc intm.RunConfig, targets []*github.IssueComment, body string) (Outcome, error) {
	outcome := Outcome{
		Action:  ActionUpdated,
		Results: make([]Result, len(targets)),
	}

	var g errgroup.Group
	for i, target := range targets {
		i := i
		id := target.GetID()
		g.Go(func() error {
			p.log.Info().Int64("comment_id", id).Msg("updating benchmark report comment")

			updated, _, err := p.client.UpdateComment(ctx, rc.Owner, rc.Repo, id, &github.IssueComment{
				Body: github.String(body),
			})
			if err != nil {
				outcome.Results[i] = Result{CommentID: id, Err: err}
				return err
			}
			outcome.Results[i] = Result{CommentID: id, URL: updated.GetHTMLURL()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		failed := outcome.Failed()
		p.log.Error().
			Int("failed", len(failed)).
			Int("total", len(targets)).
			Msg("benchmark report comment update failed")
		return outcome, fmt.Errorf("%w: %w", intm.ErrCommentUpdateFailed, outcome.err())
	}

	p.log.Info().Int("updated", len(targets)).Msg("benchmark report comments updated")
	return outcome, nil
}
