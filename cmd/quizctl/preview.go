package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Assemble an adaptive quiz from a YAML bank and learner profile (no database)",
		RunE:  runPreview,
	}
	cmd.Flags().String("bank", "", "Path to the question bank YAML (required)")
	cmd.Flags().String("mastery", "", "Path to the learner profile YAML")
	cmd.Flags().String("player", "", "Player name (overrides the profile's player)")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible quiz; 0 picks a random seed")
	_ = cmd.MarkFlagRequired("bank")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	bankPath, _ := cmd.Flags().GetString("bank")
	profilePath, _ := cmd.Flags().GetString("mastery")
	player, _ := cmd.Flags().GetString("player")
	seed, _ := cmd.Flags().GetUint64("seed")
	logger := cliLogger(cmd)

	bank, err := question.LoadYAMLFile(bankPath)
	if err != nil {
		return err
	}

	var profile profileFile
	if profilePath != "" {
		if profile, err = loadProfile(profilePath); err != nil {
			return err
		}
	}
	if player == "" {
		player = profile.Player
	}

	opts := adaptive.EngineOptions{}
	if seed != 0 {
		opts.NewRand = func() adaptive.Random { return adaptive.NewSeededRandom(seed) }
	}
	engine, err := adaptive.NewEngine(adaptive.DefaultConfig(), opts)
	if err != nil {
		return err
	}

	sel, err := engine.Select(player, question.Candidates(bank), profile.mastery(), profile.sessions())
	if err != nil {
		return err
	}
	logger.Debug().Int("bank", len(bank)).Int("backfilled", sel.Backfilled).Msg("selection finished")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Player: %s\n", displayPlayer(player))
	fmt.Fprintf(out, "Weak: %s | Medium: %s | Strong: %s\n",
		joinSkills(sel.Buckets.Skills(adaptive.CategoryWeak)),
		joinSkills(sel.Buckets.Skills(adaptive.CategoryMedium)),
		joinSkills(sel.Buckets.Skills(adaptive.CategoryStrong)))

	size := engine.Config().QuizSize
	if sel.Short(size) {
		fmt.Fprintf(out, "Short quiz: %d of %d questions available\n", len(sel.Questions), size)
	}

	idx := question.Index(bank)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tSKILL\tSUB-SKILL\tDIFFICULTY\tTEXT")
	for i, c := range sel.Questions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", i+1, c.ID, c.Skill, c.SubSkill, c.Difficulty, idx[c.ID].Text)
	}
	return tw.Flush()
}

func joinSkills(skills []string) string {
	if len(skills) == 0 {
		return "-"
	}
	return strings.Join(skills, ", ")
}

func displayPlayer(p string) string {
	if p == "" {
		return "(anonymous)"
	}
	return p
}
