package internal

import "errors"

var (
	// Configuration errors.
	ErrMissingEnv     = errors.New("missing required environment variable")
	ErrMissingContext = errors.New("missing invocation context")
	ErrMatrixRead     = errors.New("failed to read benchmark matrix")

	// Report errors.
	ErrReportRead      = errors.New("failed to read benchmark report")
	ErrInvalidCategory = errors.New("invalid benchmark category")
	ErrUnknownFormat   = errors.New("unknown report format")

	// Comment errors.
	ErrCommentList         = errors.New("failed to list pull request comments")
	ErrCommentCreateFailed = errors.New("failed to create new comment")
	ErrCommentUpdateFailed = errors.New("failed to update existing comment")
)
