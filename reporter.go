package main

import (
	"context"
	"fmt"
	"io"

	intm "benchmark-reporter/internal"
	"benchmark-reporter/internal/benchmark"
	"benchmark-reporter/internal/comment"
	"benchmark-reporter/internal/render"

	"github.com/rs/zerolog"
)

type publisher interface {
	Publish(ctx context.Context, rc intm.RunConfig, body string) (comment.Outcome, error)
}

// Reporter turns collected regressions into one pull request comment.
type Reporter struct {
	log       zerolog.Logger
	collector benchmark.Collector
	renderer  *render.Renderer
	publisher publisher

	dryRun bool
	out    io.Writer
}

func (r *Reporter) Run(ctx context.Context, rc intm.RunConfig) (comment.Outcome, error) {
	items, err := r.collector.Collect(ctx)
	if err != nil {
		return comment.Outcome{}, fmt.Errorf("collect regressions: %w", err)
	}

	if len(items) == 0 {
		r.log.Info().Msg("There are no performance regressions.")
		return comment.Outcome{Action: comment.ActionNone}, nil
	}

	if !r.dryRun {
		if err := rc.Validate(); err != nil {
			return comment.Outcome{}, err
		}
	}

	r.log.Info().
		Int("categories", len(items)).
		Str("repo", rc.Owner+"/"+rc.Repo).
		Int("pr", rc.IssueNumber).
		Msg("performance regressions found")

	body, err := r.renderer.Assemble(items, rc)
	if err != nil {
		return comment.Outcome{}, err
	}

	if r.dryRun {
		_, err := fmt.Fprintln(r.out, body)
		return comment.Outcome{Action: comment.ActionNone}, err
	}

	return r.publisher.Publish(ctx, rc, body)
}

func (a *app) newReporter(ctx context.Context) (*Reporter, error) {
	matrix, err := benchmark.LoadMatrix(a.cfg.MatrixPath)
	if err != nil {
		return nil, err
	}

	locator := benchmark.FileLocator{Dir: a.cfg.ReportDir}

	client, err := comment.NewClient(ctx, a.cfg.Token, a.cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		log:       a.log,
		collector: benchmark.NewHyperfineCollector(a.log, matrix, locator),
		renderer:  render.NewRenderer(locator),
		publisher: comment.NewPublisher(client, a.log, render.Title),
		dryRun:    a.cfg.DryRun,
		out:       a.stdout,
	}, nil
}
