package cmd

import (
	"github.com/spf13/cobra"

	"raspctl/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive group picker",
	Long:  `Search for a group interactively, preview this week's lessons and optionally export the .ics files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunPicker()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
