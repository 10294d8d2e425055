package main

import (
	"github.com/spf13/cobra"

	"haeds/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevel string
	var logFormat string

	ctx := newCommandContext(&configFlag, &logLevel, &logFormat)

	rootCmd := &cobra.Command{
		Use:           "haedscfg",
		Short:         "Validate and inspect haeds configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.initLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newDumpCommand(ctx))
	rootCmd.AddCommand(newSectionsCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
