package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"raspctl/pkg/exporter"
	"raspctl/pkg/format"
	"raspctl/pkg/scraper"
	"raspctl/pkg/textutil"
	"raspctl/pkg/timezone"
)

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, fmt.Sprintf(
		"Привет! Я бот для расписания. Доступные команды:\n"+
			"• /week [url] [group] — показать расписание недели текстом.\n"+
			"• /ics [url] [group] — отправить .ics файлы (мобильный и Google).\n"+
			"• /plan <YYYY-MM-DD> <HH:MM> [url] [group] — запланировать отправку текста.\n"+
			"• В группе можно написать: 'Бот, кинь расписание'.\n"+
			"Текущие значения по умолчанию: URL=%s, группа=%s",
		b.cfg.ScheduleURL, b.cfg.Group,
	))
}

// fetch runs the whole pipeline for one request with its own client.
func (b *Bot) fetch(rawURL, group string) *scraper.WeekSchedule {
	return scraper.NewClientForURL(rawURL).FetchWeek(rawURL, group)
}

func (b *Bot) handleWeek(msg *tgbotapi.Message, rawURL, group string) {
	b.sendWeekText(msg.Chat.ID, rawURL, group, time.Now().In(timezone.Moscow()))
}

func (b *Bot) sendWeekText(chatID int64, rawURL, group string, ref time.Time) {
	schedule := b.fetch(rawURL, group)
	text := format.Week(schedule.Lessons, ref)
	if !schedule.Empty() {
		text = fmt.Sprintf("Расписание для группы %s:\n\n%s", schedule.Group, text)
	}
	b.send(chatID, text)
	slog.Info("weekly digest sent", "chat", chatID, "group", group)
}

func (b *Bot) handleICS(msg *tgbotapi.Message, rawURL, group string) {
	schedule := b.fetch(rawURL, group)

	calendars, err := exporter.NewBuilder().Build(schedule)
	if errors.Is(err, exporter.ErrNoLessons) {
		b.send(msg.Chat.ID, "Не удалось найти занятия для указанной группы. Проверьте URL и код группы.")
		return
	}
	if err != nil {
		slog.Error("calendar build failed", "group", group, "error", err)
		b.send(msg.Chat.ID, failureMessage)
		return
	}

	slug := textutil.Slug(schedule.Group)
	files := []struct {
		name string
		data []byte
	}{
		{fmt.Sprintf("schedule_%s.ics", slug), calendars[exporter.DialectMobile]},
		{fmt.Sprintf("schedule_%s_google.ics", slug), calendars[exporter.DialectGoogle]},
	}

	for _, file := range files {
		doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: file.name, Bytes: file.data})
		if _, err := b.api.Send(doc); err != nil {
			slog.Error("could not send calendar file", "name", file.name, "error", err)
			b.send(msg.Chat.ID, sendFailMessage)
			return
		}
	}
	slog.Info("calendar files sent", "chat", msg.Chat.ID, "group", schedule.Group)
}

// handlePlan defers a weekly-digest send to a Moscow-time instant. The timer
// lives in process memory only; a restart forgets pending sends.
func (b *Bot) handlePlan(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg.Chat.ID, "Укажите дату и время: /plan YYYY-MM-DD HH:MM [url] [group]")
		return
	}

	runAt, err := parsePlanTime(args[0], args[1])
	if err != nil {
		b.reply(msg.Chat.ID, "Неверный формат. Дата YYYY-MM-DD, время HH:MM (24ч).")
		return
	}
	now := time.Now().In(timezone.Moscow())
	if !runAt.After(now) {
		b.reply(msg.Chat.ID, "Время должно быть в будущем относительно московского времени.")
		return
	}

	rawURL, group := resolveArgs(args[2:], b.cfg)
	chatID := msg.Chat.ID

	time.AfterFunc(runAt.Sub(now), func() {
		b.sendWeekText(chatID, rawURL, group, runAt)
	})

	b.reply(chatID, fmt.Sprintf(
		"Плановая отправка настроена. Расписание будет отправлено %s для группы %s.",
		runAt.Format("02.01.2006 15:04"), group,
	))
	slog.Info("deferred send planned", "chat", chatID, "at", runAt)
}

// parsePlanTime parses the date and time arguments as Moscow wall clock.
func parsePlanTime(dateArg, timeArg string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateArg+" "+timeArg, timezone.Moscow())
}
