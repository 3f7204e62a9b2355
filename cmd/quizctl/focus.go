package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Print the daily focus summary for a learner profile",
		RunE:  runFocus,
	}
	cmd.Flags().String("mastery", "", "Path to the learner profile YAML (required)")
	_ = cmd.MarkFlagRequired("mastery")
	return cmd
}

func runFocus(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("mastery")

	profile, err := loadProfile(path)
	if err != nil {
		return err
	}
	engine, err := adaptive.NewEngine(adaptive.DefaultConfig(), adaptive.EngineOptions{})
	if err != nil {
		return err
	}
	areas, err := engine.FocusSummary(profile.mastery())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, a := range areas {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\n", a.Label, a.Skill, a.Score, a.Priority)
	}
	return tw.Flush()
}
