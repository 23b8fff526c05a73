// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/langbench/langbench/internal/bench"
	"github.com/langbench/langbench/internal/config"
	"github.com/langbench/langbench/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reaches configuration, time and output through it.
	App struct {
		Config  config.Provider
		Clock   bench.Clock
		NewRand func() *rand.Rand
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config  config.Provider
		Clock   bench.Clock
		NewRand func() *rand.Rand
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// rootOptions holds the persistent flag values.
	rootOptions struct {
		verbose    bool
		configPath string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Clock == nil {
		deps.Clock = bench.RealClock{}
	}
	if deps.NewRand == nil {
		deps.NewRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	return &App{
		Config:  deps.Config,
		Clock:   deps.Clock,
		NewRand: deps.NewRand,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

// loadConfig returns the effective configuration. A load failure is reported on
// stderr and never fatal: defaults apply instead.
func (a *App) loadConfig(ctx context.Context, opts *rootOptions) *config.Config {
	cfg, _, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, opts.verbose))
		if opts.verbose {
			a.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		}
		cfg = config.DefaultConfig()
	}

	if opts.verbose {
		withVerbose := *cfg
		withVerbose.UI.Verbose = true
		return &withVerbose
	}
	return cfg
}

// newLogger builds the stderr logger for cfg.
func (a *App) newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.EffectiveLevel().String())
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// renderIssue writes an issue page to stderr. Rendering failures fall back to
// the raw markdown.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	out, err := iss.Render(scheme.String())
	if err != nil {
		out = string(iss.MarkdownMsg())
	}
	fmt.Fprintln(a.stderr, out)
}
