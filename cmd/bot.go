package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"raspctl/pkg/bot"
	"raspctl/pkg/config"
)

const tokenEnv = "TELEGRAM_BOT_TOKEN"

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram schedule bot",
	Long:  `Start long-polling Telegram updates and answer schedule requests with weekly digests and .ics files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := os.Getenv(tokenEnv)
		if token == "" {
			return fmt.Errorf("set %s=<telegram bot token> to run the bot", tokenEnv)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		b, err := bot.New(token, cfg)
		if err != nil {
			return err
		}
		return b.Run()
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
