package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	intm "benchmark-reporter/internal"
	"benchmark-reporter/internal/benchmark"
	"benchmark-reporter/internal/comment"
	"benchmark-reporter/internal/render"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCollector struct {
	items []benchmark.Item
	err   error
}

func (c staticCollector) Collect(context.Context) ([]benchmark.Item, error) {
	return c.items, c.err
}

type recordingPublisher struct {
	bodies []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ intm.RunConfig, body string) (comment.Outcome, error) {
	p.bodies = append(p.bodies, body)
	return comment.Outcome{Action: comment.ActionCreated, Results: []comment.Result{{CommentID: 1}}}, p.err
}

type stubLocator map[benchmark.Extension]string

func (l stubLocator) LoadReport(_ benchmark.Category, ext benchmark.Extension) (string, error) {
	return l[ext], nil
}

var testRun = intm.RunConfig{Owner: "octo", Repo: "pdu", IssueNumber: 4, SHA: "cafe"}

func newTestReporter(items []benchmark.Item, pub publisher) *Reporter {
	locator := stubLocator{benchmark.ExtMarkdown: "ok", benchmark.ExtLog: "log-line", benchmark.ExtJSON: "{}"}
	return &Reporter{
		log:       zerolog.Nop(),
		collector: staticCollector{items: items},
		renderer:  render.NewRenderer(locator),
		publisher: pub,
		out:       &bytes.Buffer{},
	}
}

func TestReporterNoRegressionsSkipsPublish(t *testing.T) {
	pub := &recordingPublisher{}

	outcome, err := newTestReporter(nil, pub).Run(context.Background(), testRun)
	require.NoError(t, err)
	assert.Equal(t, comment.ActionNone, outcome.Action)
	assert.Empty(t, pub.bodies)
}

func TestReporterPublishesAssembledBody(t *testing.T) {
	pub := &recordingPublisher{}

	outcome, err := newTestReporter([]benchmark.Item{{Category: "build"}}, pub).Run(context.Background(), testRun)
	require.NoError(t, err)
	assert.Equal(t, comment.ActionCreated, outcome.Action)

	require.Len(t, pub.bodies, 1)
	assert.True(t, len(pub.bodies[0]) > 0)
	assert.Contains(t, pub.bodies[0], "* ref: octo/pdu@cafe")
	assert.Contains(t, pub.bodies[0], "<strong>build</strong>")
}

func TestReporterDryRunPrintsBody(t *testing.T) {
	pub := &recordingPublisher{}
	out := &bytes.Buffer{}
	r := newTestReporter([]benchmark.Item{{Category: "build"}}, pub)
	r.dryRun = true
	r.out = out

	_, err := r.Run(context.Background(), testRun)
	require.NoError(t, err)
	assert.Empty(t, pub.bodies)
	assert.Contains(t, out.String(), render.Title+"\n")
}

func TestReporterPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	r := newTestReporter(nil, &recordingPublisher{})
	r.collector = staticCollector{err: boom}
	_, err := r.Run(context.Background(), testRun)
	assert.ErrorIs(t, err, boom)

	pub := &recordingPublisher{err: boom}
	_, err = newTestReporter([]benchmark.Item{{Category: "build"}}, pub).Run(context.Background(), testRun)
	assert.ErrorIs(t, err, boom)
}

func TestReporterValidatesContextOnlyWhenPublishing(t *testing.T) {
	pub := &recordingPublisher{}

	outcome, err := newTestReporter(nil, pub).Run(context.Background(), intm.RunConfig{})
	require.NoError(t, err)
	assert.Equal(t, comment.ActionNone, outcome.Action)

	_, err = newTestReporter([]benchmark.Item{{Category: "build"}}, pub).Run(context.Background(), intm.RunConfig{Owner: "octo", Repo: "pdu"})
	assert.ErrorIs(t, err, intm.ErrMissingContext)
	assert.Empty(t, pub.bodies)
}
