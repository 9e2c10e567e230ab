package main

import (
	"io"
	"os"

	intm "benchmark-reporter/internal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	log    zerolog.Logger
	cfg    intm.Config
	stdout io.Writer
}

func main() {
	_ = godotenv.Load()

	a := &app{
		log:    intm.NewLogger(os.Getenv("LOG_LEVEL"), os.Stderr),
		stdout: os.Stdout,
	}

	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("benchmark report failed")
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "benchmark-reporter",
		Short: "Post benchmark regressions as a pull request comment",
		Long: `Reads the benchmark reports of every regressed category and creates or
updates a single "Benchmark Reports" comment on the pull request that
triggered the CI run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = intm.NewLogger(cfg.LogLevel, os.Stderr)
			return nil
		},
		RunE: a.runPublish,
	}

	pf := root.PersistentFlags()
	pf.String("report-dir", ".", "directory holding the benchmark report files")
	pf.String("matrix", "benchmark-matrix.yaml", "benchmark matrix file")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("api-url", "", "GitHub REST API root (defaults to api.github.com)")

	f := root.Flags()
	f.String("owner", "", "repository owner (defaults to GITHUB_REPOSITORY)")
	f.String("repo", "", "repository name (defaults to GITHUB_REPOSITORY)")
	f.Int("pr", 0, "pull request number (defaults to the GITHUB_EVENT_PATH payload)")
	f.String("sha", "", "commit sha (defaults to GITHUB_SHA)")
	f.Bool("dry-run", false, "print the comment instead of publishing it")

	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) runPublish(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// The context is only validated once there is something to publish.
	rc, err := intm.DetectRunConfig()
	if err != nil {
		a.log.Warn().Err(err).Msg("could not read github event payload")
	}
	rc = rc.Merge(a.cfg.Overrides)

	reporter, err := a.newReporter(ctx)
	if err != nil {
		return err
	}

	outcome, err := reporter.Run(ctx, rc)
	if err != nil {
		return err
	}

	a.log.Info().
		Str("action", string(outcome.Action)).
		Ints64("comment_ids", outcome.CommentIDs()).
		Msg("benchmark report done")
	return nil
}
