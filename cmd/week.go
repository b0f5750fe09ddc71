package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"raspctl/pkg/config"
	"raspctl/pkg/format"
	"raspctl/pkg/scraper"
	"raspctl/pkg/timezone"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print this week's schedule as text",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		rawURL, _ := cmd.Flags().GetString("url")
		group, _ := cmd.Flags().GetString("group")
		if rawURL == "" {
			rawURL = cfg.ScheduleURL
		}
		if group == "" {
			group = cfg.Group
		}

		var schedule *scraper.WeekSchedule
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching schedule for group %s...", group)).
			Action(func() {
				schedule = scraper.NewClientForURL(rawURL).FetchWeek(rawURL, group)
			}).
			Run()

		if !schedule.Empty() {
			fmt.Printf("Расписание для группы %s:\n\n", schedule.Group)
		}
		fmt.Println(format.Week(schedule.Lessons, time.Now().In(timezone.Moscow())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)

	weekCmd.Flags().StringP("url", "u", "", "Schedule page URL (may carry a ?q= group selection)")
	weekCmd.Flags().StringP("group", "g", "", "Group code (e.g. 15.14д-гг01/24м)")
}
