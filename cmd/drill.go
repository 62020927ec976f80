package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/coach"
	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/ui/drill"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Start an interactive drill session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

func init() {
	for _, c := range []*cobra.Command{drillCmd, rootCmd} {
		c.Flags().String("category", "", "Pin a problem category (e.g. simple-beam, truss-pratt)")
		c.Flags().String("difficulty", "", "Difficulty: beginner, intermediate, advanced or mixed")
		c.Flags().IntP("count", "n", 10, "Number of questions in the session")
		c.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
		c.Flags().Bool("weakness", false, "Bias questions toward your weakest categories")
	}
}

func runDrill(cmd *cobra.Command) error {
	opts, err := drillOptions(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen := problemgen.New(problemgen.NewPoolRegistry(), drillRand(cmd))

	// Tips are optional; without an API key the session runs silently.
	var tips drill.Coach
	if c := coach.New(os.Getenv("OPENAI_API_KEY")); c != nil {
		tips = c
	}

	model := drill.New(gen, st, tips, opts)
	_, err = tea.NewProgram(model).Run()
	return err
}

func drillOptions(cmd *cobra.Command) (drill.Options, error) {
	var opts drill.Options

	if s, _ := cmd.Flags().GetString("category"); s != "" {
		cat := problemgen.Category(s)
		if !cat.Valid() {
			return opts, fmt.Errorf("unknown category %q", s)
		}
		opts.Category = cat
	}
	if s, _ := cmd.Flags().GetString("difficulty"); s != "" {
		d := problemgen.Difficulty(s)
		if !d.Valid() {
			return opts, fmt.Errorf("unknown difficulty %q", s)
		}
		opts.Difficulty = d
	}
	opts.Count, _ = cmd.Flags().GetInt("count")
	opts.Weakness, _ = cmd.Flags().GetBool("weakness")
	return opts, nil
}

func drillRand(cmd *cobra.Command) problemgen.Rand {
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		return problemgen.NewRand(seed)
	}
	return problemgen.NewTimeRand()
}
