// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/langbench/langbench/internal/bench"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const listWordWrap = 120

func newListCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmark workloads without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listWorkloads(cmd.Context(), app, opts)
		},
	}
}

func listWorkloads(ctx context.Context, app *App, opts *rootOptions) error {
	cfg := app.loadConfig(ctx, opts)

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(cfg.UI.ColorScheme.String()),
		glamour.WithWordWrap(listWordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(workloadsMarkdown(bench.DefaultCases(app.NewRand())))
	if err != nil {
		return fmt.Errorf("failed to render workload list: %w", err)
	}
	fmt.Fprint(app.stdout, out)
	return nil
}

// workloadsMarkdown describes cases as a markdown table in execution order.
func workloadsMarkdown(cases []bench.Case) string {
	var sb strings.Builder
	sb.WriteString("# " + bench.BannerTitle + " workloads\n\n")
	sb.WriteString("| # | Workload | Input | Complexity |\n")
	sb.WriteString("|---|----------|-------|------------|\n")
	for i, c := range cases {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i+1, c.Label, c.Input, c.Complexity)
	}
	sb.WriteString("\nEach workload runs exactly once; durations are wall-clock milliseconds.\n")
	return sb.String()
}
