package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"

	"raspctl/pkg/config"
	"raspctl/pkg/exporter"
	"raspctl/pkg/format"
	"raspctl/pkg/scraper"
	"raspctl/pkg/textutil"
	"raspctl/pkg/timezone"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// theme builds the form theme, honoring the user's saved accent color.
func theme(cfg *config.AppConfig) *huh.Theme {
	baseColor := "39"
	if cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)
	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)
	return t
}

// RunPicker drives the interactive flow: search a group, preview the week,
// optionally export the calendar files.
func RunPicker() error {
	cfg, _ := config.Load()
	formTheme := theme(cfg)

	fmt.Println(accentStyle.Render("Поиск расписания РЭУ"))

	query := ""
	if cfg != nil {
		query = cfg.Group
	}
	queryForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Код группы").
				Description("Например 15.14д-гг01/24м").
				Value(&query),
		),
	).WithTheme(formTheme)
	if err := queryForm.Run(); err != nil {
		return err
	}

	client := scraper.NewClient(baseURL(cfg))

	var suggestions []scraper.Suggestion
	_ = spinner.New().
		Title("Ищем группу на сайте...").
		Action(func() {
			suggestions, _ = client.Suggest(query)
		}).
		Run()

	selection := query
	if len(suggestions) > 0 {
		options := make([]huh.Option[string], 0, len(suggestions))
		for _, s := range suggestions {
			options = append(options, huh.NewOption(s.Name, s.Key))
		}
		selectForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Выберите группу").
					Options(options...).
					Value(&selection),
			),
		).WithTheme(formTheme)
		if err := selectForm.Run(); err != nil {
			return err
		}
	}

	var schedule *scraper.WeekSchedule
	_ = spinner.New().
		Title("Загружаем расписание...").
		Action(func() {
			schedule = client.FetchWeek("", selection)
		}).
		Run()

	if schedule.Empty() {
		fmt.Println(errorStyle.Render(format.MsgScheduleMissing))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Расписание для группы %s", schedule.Group)))
	fmt.Println()
	fmt.Println(format.Week(schedule.Lessons, time.Now().In(timezone.Moscow())))
	fmt.Println()

	doExport := false
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Сохранить .ics файлы в текущую папку?").
				Value(&doExport),
		),
	).WithTheme(formTheme)
	if err := confirmForm.Run(); err != nil {
		return err
	}
	if !doExport {
		return nil
	}

	calendars, err := exporter.NewBuilder().Build(schedule)
	if err != nil {
		return fmt.Errorf("failed to build calendars: %w", err)
	}

	slug := textutil.Slug(schedule.Group)
	outputs := map[string][]byte{
		fmt.Sprintf("schedule_%s.ics", slug):        calendars[exporter.DialectMobile],
		fmt.Sprintf("schedule_%s_google.ics", slug): calendars[exporter.DialectGoogle],
	}
	for name, data := range outputs {
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		fmt.Println(accentStyle.Render("Сохранено: " + name))
	}
	return nil
}

func baseURL(cfg *config.AppConfig) string {
	if cfg == nil || cfg.ScheduleURL == "" {
		return scraper.DefaultBaseURL
	}
	return cfg.ScheduleURL
}
