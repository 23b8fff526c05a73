// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/langbench/langbench/internal/config"
	"github.com/langbench/langbench/internal/issue"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatCUE  = "cue"
	formatTOML = "toml"
)

func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage langbench configuration",
		Long: `Manage langbench configuration.

Configuration only affects presentation (log level, verbosity, color scheme);
workload sizes are fixed. The file is looked up in:
  - the path given with --config
  - Linux: ~/.config/langbench/config.cue
  - macOS: ~/Library/Application Support/langbench/config.cue
  - Windows: %APPDATA%\langbench\config.cue
  - ./config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, opts, format)
		},
	}
	showCmd.Flags().StringVar(&format, "format", formatText, "output format: text, cue or toml")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create a default configuration file.

With --config the file is written at that path. Otherwise nothing is written
when the lookup already finds a config file (including ./config.cue), and a new
file goes to the user config directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.Context(), app, opts)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, opts *rootOptions, format string) error {
	cfg, path, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		if opts.verbose {
			app.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		}
		return err
	}

	switch format {
	case formatCUE:
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	case formatTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
	case formatText:
		writeConfigText(app.stdout, cfg, path)
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", format, formatText, formatCUE, formatTOML)
	}
	return nil
}

func writeConfigText(w io.Writer, cfg *config.Config, path string) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(w, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))
}

// initConfig writes a default config file. With --config the given path is the
// target; otherwise a file that the lookup already finds (user config dir or
// ./config.cue) is left alone and a new one goes to the user config dir.
func initConfig(app *App, opts *rootOptions) error {
	var (
		path    string
		created bool
		err     error
	)

	switch {
	case opts.configPath != "":
		path = opts.configPath
		created, err = config.CreateDefaultConfigFile(path)
	default:
		path, err = config.ResolvePath(config.LoadOptions{})
		if err != nil {
			return err
		}
		if path == "" {
			dir, dirErr := config.ConfigDir()
			if dirErr != nil {
				return dirErr
			}
			path, created, err = config.CreateDefaultConfig(dir)
		}
	}
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(app.stdout, "Config file already exists at %s\n", CmdStyle.Render(path))
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created default config file at"), CmdStyle.Render(path))
	return nil
}

func showConfigPath(ctx context.Context, app *App, opts *rootOptions) error {
	_, path, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintf(app.stdout, "%s\n", SubtitleStyle.Render("(no config file found, using defaults)"))
		fmt.Fprintf(app.stdout, "Default location: %s\n", CmdStyle.Render(defaultConfigHint()))
		return nil
	}
	fmt.Fprintln(app.stdout, path)
	return nil
}

func configFileBase() string {
	return config.ConfigFileName + "." + config.ConfigFileExt
}
