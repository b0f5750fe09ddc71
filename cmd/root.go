package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"raspctl/pkg/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "raspctl",
	Short: "A CLI and Telegram bot for REA timetables",
	Long: `raspctl scrapes the rasp.rea.ru timetable site, renders weekly digests
and exports .ics calendar files for mobile and Google Calendar.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
}
