// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/langbench/langbench/internal/bench"
	"github.com/langbench/langbench/internal/config"
	"github.com/langbench/langbench/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags.
	Version = "dev"
	// Commit is set at build time via -ldflags.
	Commit = "unknown"
	// BuildDate is set at build time via -ldflags.
	BuildDate = "unknown"
)

// NewRootCommand builds the langbench command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "langbench",
		Short: "Time four classic compute workloads",
		Long: TitleStyle.Render("langbench") + SubtitleStyle.Render(" - wall-clock micro-benchmarks") + `

Runs a prime sieve, a recursive Fibonacci, a dense matrix multiplication and a
large integer sort once each, printing one line per workload:

  ` + CmdStyle.Render("<label>: <milliseconds> ms") + `

Logs and warnings are written to stderr; stdout only carries the banner and the
timing lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), app, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs and detailed error output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: "+defaultConfigHint()+")")

	rootCmd.AddCommand(newListCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd
}

// Execute runs the CLI and exits the process on failure.
func Execute() {
	app := NewApp(Dependencies{})

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}

func runBenchmark(ctx context.Context, app *App, opts *rootOptions) error {
	cfg := app.loadConfig(ctx, opts)
	logger := app.newLogger(cfg)

	harness := bench.NewHarness(app.stdout,
		bench.WithClock(app.Clock),
		bench.WithLogger(logger),
	)
	suite := bench.NewSuite(harness, bench.DefaultCases(app.NewRand()))

	samples, err := suite.Run(ctx)
	if err == nil {
		logger.Debug("benchmark finished", "workloads", len(samples))
		return nil
	}

	if errors.Is(err, context.Canceled) {
		logger.Warn("benchmark interrupted", "completed", len(samples))
		if cfg.UI.Verbose {
			app.renderIssue(issue.BenchmarkInterruptedId, cfg.UI.ColorScheme)
		}
		return &ExitError{Code: ExitInterrupted, Err: err}
	}

	logger.Error("workload failed", "completed", len(samples), "err", err)
	if cfg.UI.Verbose {
		app.renderIssue(issue.WorkloadFailedId, cfg.UI.ColorScheme)
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

func defaultConfigHint() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return "./" + configFileBase()
	}
	return filepath.Join(dir, configFileBase())
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
