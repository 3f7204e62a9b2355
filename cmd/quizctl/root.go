package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Operate the adaptive quiz engine from the command line",
		Long:          "quizctl previews adaptive quizzes and focus summaries from YAML files and imports question banks into Postgres.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")

	root.AddCommand(newPreviewCmd())
	root.AddCommand(newFocusCmd())
	root.AddCommand(newImportCmd())
	return root
}

func cliLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()
}
