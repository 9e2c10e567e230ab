package main

import (
	"context"
	"encoding/json"

	intm "benchmark-reporter/internal"
	"benchmark-reporter/internal/comment"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type reportRunner interface {
	Run(ctx context.Context, rc intm.RunConfig) (comment.Outcome, error)
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP relay that publishes reports on request",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().String("listen-addr", ":8080", "address to listen on")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	reporter, err := a.newReporter(cmd.Context())
	if err != nil {
		return err
	}

	srv := newServer(a.log, reporter)

	a.log.Info().
		Str("addr", a.cfg.ListenAddr).
		Str("report_dir", a.cfg.ReportDir).
		Str("matrix", a.cfg.MatrixPath).
		Msg("starting benchmark-reporter relay")

	return srv.Listen(a.cfg.ListenAddr)
}

func newServer(log zerolog.Logger, reporter reportRunner) *fiber.App {
	srv := fiber.New(fiber.Config{
		AppName: "benchmark-reporter",
	})

	srv.Use(func(c *fiber.Ctx) error {
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("incoming request")
		return c.Next()
	})

	srv.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	srv.Post("/report", func(c *fiber.Ctx) error {
		var meta intm.PRMetadata
		if err := json.Unmarshal(c.Body(), &meta); err != nil {
			log.Warn().Err(err).Msg("invalid report request")
			return c.Status(fiber.StatusBadRequest).JSON(intm.ReportResponse{Status: "error", Error: "invalid JSON body"})
		}

		rc := meta.RunConfig()
		if err := rc.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(intm.ReportResponse{Status: "error", Error: err.Error()})
		}

		outcome, err := reporter.Run(c.UserContext(), rc)
		if err != nil {
			log.Error().
				Err(err).
				Str("repo", rc.Owner+"/"+rc.Repo).
				Int("pr", rc.IssueNumber).
				Msg("benchmark report failed")
			return c.Status(fiber.StatusBadGateway).JSON(intm.ReportResponse{Status: "error", Error: err.Error()})
		}

		return c.JSON(intm.ReportResponse{
			Status:     string(outcome.Action),
			CommentIDs: outcome.CommentIDs(),
		})
	})

	return srv
}
