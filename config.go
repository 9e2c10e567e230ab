package main

import (
	"fmt"

	intm "benchmark-reporter/internal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func loadConfig(cmd *cobra.Command) (intm.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return intm.Config{}, fmt.Errorf("bind flags: %w", err)
	}

	_ = v.BindEnv("github-token", "GITHUB_TOKEN")
	_ = v.BindEnv("log-level", "LOG_LEVEL")
	_ = v.BindEnv("api-url", "GITHUB_API_URL")
	_ = v.BindEnv("report-dir", "BENCHMARK_REPORT_DIR")
	_ = v.BindEnv("matrix", "BENCHMARK_MATRIX")
	_ = v.BindEnv("listen-addr", "LISTEN_ADDR")

	token := v.GetString("github-token")
	if token == "" {
		return intm.Config{}, fmt.Errorf("%w: GITHUB_TOKEN", intm.ErrMissingEnv)
	}

	return intm.Config{
		Token:      token,
		LogLevel:   v.GetString("log-level"),
		APIBaseURL: v.GetString("api-url"),
		ReportDir:  v.GetString("report-dir"),
		MatrixPath: v.GetString("matrix"),
		ListenAddr: v.GetString("listen-addr"),
		DryRun:     v.GetBool("dry-run"),
		Overrides: intm.RunConfig{
			Owner:       v.GetString("owner"),
			Repo:        v.GetString("repo"),
			IssueNumber: v.GetInt("pr"),
			SHA:         v.GetString("sha"),
		},
	}, nil
}
