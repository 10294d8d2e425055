package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"haeds/internal/config"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := ctx.loadSnapshot()
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Path", statusInfo, snap.Path(), colorize))
			if sections := snap.Sections(); len(sections) > 0 {
				fmt.Fprintln(out, renderStatusLine("Sections", statusInfo, strings.Join(sections, ", "), colorize))
			}
			if !snap.OK() {
				fmt.Fprintln(out, renderStatusLine("Result", statusError, snap.Message(), colorize))
				return snap.Err()
			}
			fmt.Fprintln(out, renderStatusLine("Result", statusOK, snap.Message(), colorize))

			logger, closeLog := ctx.configuredLogger(snap)
			logger.Info("configuration valid",
				"path", snap.Path(),
				"codec", snap.Video().Codec,
				"streams", snap.Video().StreamCount,
			)
			return closeLog()
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show validated settings as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := ctx.loadSnapshot()
			if !snap.OK() {
				return snap.Err()
			}
			if jsonOutput {
				return writeJSON(cmd, snapshotView(snap))
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderFieldTable(snap.Fields()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newDumpCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every setting, one per line, whether or not the file is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := ctx.loadSnapshot()
			if !snap.OK() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s (%s)\n", snap.Message(), snap.Code())
			}
			return snap.Dump(cmd.OutOrStdout())
		},
	}
}

func newSectionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections declared in the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := ctx.loadSnapshot()
			sections := snap.Sections()
			// Sections survive field failures, but not a missing or unparsable file.
			if len(sections) == 0 && !snap.OK() {
				return snap.Err()
			}
			out := cmd.OutOrStdout()
			for _, name := range sections {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export validated settings as JSON or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := ctx.loadSnapshot()
			if !snap.OK() {
				return snap.Err()
			}
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "json":
				return writeJSON(cmd, snap.Settings())
			case "toml":
				return writeTOML(cmd, snap.Settings())
			default:
				return fmt.Errorf("unsupported export format %q (use json or toml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (json, toml)")
	return cmd
}

func newInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = config.DefaultPath
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			target = expanded

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintf(out, "Edit the file, then check it with 'haedscfg validate -c %s'.\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

type snapshotJSON struct {
	Path     string          `json:"path"`
	Result   string          `json:"result"`
	Message  string          `json:"message"`
	Sections []string        `json:"sections"`
	Settings config.Settings `json:"settings"`
}

func snapshotView(snap *config.Snapshot) snapshotJSON {
	return snapshotJSON{
		Path:     snap.Path(),
		Result:   snap.Code().String(),
		Message:  snap.Message(),
		Sections: snap.Sections(),
		Settings: snap.Settings(),
	}
}
