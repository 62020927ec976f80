package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/bot"
	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram drill bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = os.Getenv("TELEGRAM_BOT_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("bot token required: set --token or TELEGRAM_BOT_TOKEN")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gen := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewTimeRand())
		b, err := bot.New(token, gen, st)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		b.Start(ctx)
		return nil
	},
}

func init() {
	botCmd.Flags().String("token", "", "Telegram bot token (overrides TELEGRAM_BOT_TOKEN env var)")
}
