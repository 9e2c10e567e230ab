package internal

import "fmt"

type Config struct {
	Token      string
	LogLevel   string
	APIBaseURL string
	ReportDir  string
	MatrixPath string
	ListenAddr string
	DryRun     bool
	Overrides  RunConfig
}

// RunConfig identifies the pull request a report is published to.
type RunConfig struct {
	Owner       string
	Repo        string
	IssueNumber int
	SHA         string
}

// CommitInfo is the ref line rendered under the comment title.
func (r RunConfig) CommitInfo() string {
	return fmt.Sprintf("* ref: %s/%s@%s", r.Owner, r.Repo, r.SHA)
}

func (r RunConfig) Validate() error {
	switch {
	case r.Owner == "" || r.Repo == "":
		return fmt.Errorf("%w: repository owner/name", ErrMissingContext)
	case r.IssueNumber <= 0:
		return fmt.Errorf("%w: pull request number", ErrMissingContext)
	case r.SHA == "":
		return fmt.Errorf("%w: commit sha", ErrMissingContext)
	}
	return nil
}

// Merge returns r with every non-zero field of o applied on top.
func (r RunConfig) Merge(o RunConfig) RunConfig {
	if o.Owner != "" {
		r.Owner = o.Owner
	}
	if o.Repo != "" {
		r.Repo = o.Repo
	}
	if o.IssueNumber != 0 {
		r.IssueNumber = o.IssueNumber
	}
	if o.SHA != "" {
		r.SHA = o.SHA
	}
	return r
}

type PRMetadata struct {
	RepoOwner string `json:"repo_owner"`
	RepoName  string `json:"repo_name"`
	PRNumber  int    `json:"pr_number"`
	HeadSHA   string `json:"head_sha"`
}

func (m PRMetadata) RunConfig() RunConfig {
	return RunConfig{
		Owner:       m.RepoOwner,
		Repo:        m.RepoName,
		IssueNumber: m.PRNumber,
		SHA:         m.HeadSHA,
	}
}

type ReportResponse struct {
	Status     string  `json:"status"`
	CommentIDs []int64 `json:"comment_ids,omitempty"`
	Error      string  `json:"error,omitempty"`
}
