package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intm "benchmark-reporter/internal"
	"benchmark-reporter/internal/comment"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	runs    []intm.RunConfig
	outcome comment.Outcome
	err     error
}

func (f *fakeRunner) Run(_ context.Context, rc intm.RunConfig) (comment.Outcome, error) {
	f.runs = append(f.runs, rc)
	return f.outcome, f.err
}

func postReport(t *testing.T, runner reportRunner, body string) (int, intm.ReportResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newServer(zerolog.Nop(), runner).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out intm.ReportResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestServerHealth(t *testing.T) {
	resp, err := newServer(zerolog.Nop(), &fakeRunner{}).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerReport(t *testing.T) {
	runner := &fakeRunner{outcome: comment.Outcome{
		Action:  comment.ActionUpdated,
		Results: []comment.Result{{CommentID: 3}, {CommentID: 5}},
	}}

	status, out := postReport(t, runner, `{"repo_owner":"octo","repo_name":"pdu","pr_number":42,"head_sha":"abc"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "updated", out.Status)
	assert.Equal(t, []int64{3, 5}, out.CommentIDs)
	assert.Equal(t, []intm.RunConfig{{Owner: "octo", Repo: "pdu", IssueNumber: 42, SHA: "abc"}}, runner.runs)
}

func TestServerReportNoRegressions(t *testing.T) {
	runner := &fakeRunner{outcome: comment.Outcome{Action: comment.ActionNone}}

	status, out := postReport(t, runner, `{"repo_owner":"octo","repo_name":"pdu","pr_number":1,"head_sha":"abc"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "none", out.Status)
	assert.Empty(t, out.CommentIDs)
}

func TestServerReportRejectsBadRequests(t *testing.T) {
	runner := &fakeRunner{}

	status, out := postReport(t, runner, `not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", out.Status)

	status, out = postReport(t, runner, `{"repo_owner":"octo","repo_name":"pdu","head_sha":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, out.Error, "pull request number")

	assert.Empty(t, runner.runs)
}

func TestServerReportFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("comment 5: 502 bad gateway")}

	status, out := postReport(t, runner, `{"repo_owner":"octo","repo_name":"pdu","pr_number":1,"head_sha":"abc"}`)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, out.Error, "502 bad gateway")
}
