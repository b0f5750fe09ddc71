package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"raspctl/pkg/config"
	"raspctl/pkg/exporter"
	"raspctl/pkg/scraper"
	"raspctl/pkg/textutil"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a group's schedule to .ics files",
	Long:  `Export the weekly schedule for a group to two .ics files: one for mobile calendars and one for Google Calendar import.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		rawURL, _ := cmd.Flags().GetString("url")
		group, _ := cmd.Flags().GetString("group")
		outDir, _ := cmd.Flags().GetString("output-dir")
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

		calendars, err := exporter.NewBuilder().Build(schedule)
		if errors.Is(err, exporter.ErrNoLessons) {
			return fmt.Errorf("no lessons found for group %s", group)
		}
		if err != nil {
			return fmt.Errorf("failed to build calendars: %w", err)
		}

		slug := textutil.Slug(schedule.Group)
		outputs := map[string]string{
			exporter.DialectMobile: filepath.Join(outDir, fmt.Sprintf("schedule_%s.ics", slug)),
			exporter.DialectGoogle: filepath.Join(outDir, fmt.Sprintf("schedule_%s_google.ics", slug)),
		}

		for dialect, path := range outputs {
			if err := os.WriteFile(path, calendars[dialect], 0644); err != nil {
				return fmt.Errorf("failed to write %s calendar: %w", dialect, err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
		fmt.Printf("Exported %d lessons for group %s\n", len(schedule.Lessons), schedule.Group)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("url", "u", "", "Schedule page URL (may carry a ?q= group selection)")
	exportCmd.Flags().StringP("group", "g", "", "Group code to export (e.g. 15.14д-гг01/24м)")
	exportCmd.Flags().StringP("output-dir", "o", ".", "Directory for the generated .ics files")
}
