package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		m, err := st.CategoryStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		fmt.Print(stats.Build(m).Format())
		return nil
	},
}
