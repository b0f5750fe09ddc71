// Package bot exposes the schedule pipeline through a Telegram bot: weekly
// digests as text, calendar files as documents and deferred sends.
package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"raspctl/pkg/config"
)

const (
	buttonWeek = "📅 Расписание недели"
	buttonICS  = "📂 Получить .ics"
	buttonPlan = "⏰ Запланировать отправку"
)

const (
	failureMessage  = "Ошибка при загрузке расписания. Попробуйте позже."
	sendFailMessage = "Ошибка при отправке файлов. Попробуйте позже."
)

// triggerKeywords make the bot respond to plain-text requests in group chats.
var triggerKeywords = []string{
	"бот, кинь расписание",
	"бот кинь расписание",
	"бот, дай расписание",
	"бот дай расписание",
	"бот покажи расписание",
}

var replyKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(buttonWeek),
		tgbotapi.NewKeyboardButton(buttonICS),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(buttonPlan),
	),
)

// Bot wires schedule fetching into Telegram chats.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.AppConfig
}

// New authorizes against the Telegram API with the given token.
func New(token string, cfg *config.AppConfig) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	return &Bot{api: api, cfg: cfg}, nil
}

// Run processes updates until the process is stopped.
func (b *Bot) Run() error {
	slog.Info("bot authorized", "username", b.api.Self.UserName)

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30

	for update := range b.api.GetUpdatesChan(updateCfg) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.route(update.Message)
	}
	return nil
}

func (b *Bot) route(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	switch msg.Text {
	case buttonWeek:
		rawURL, group := b.commandArgs(msg)
		b.handleWeek(msg, rawURL, group)
		return
	case buttonICS:
		rawURL, group := b.commandArgs(msg)
		b.handleICS(msg, rawURL, group)
		return
	case buttonPlan:
		b.reply(msg.Chat.ID, "Используйте команду /plan <YYYY-MM-DD> <HH:MM> [url] [group] для плановой отправки. Время — московское.")
		return
	}

	if msg.Chat.IsPrivate() {
		b.handlePrivateText(msg)
		return
	}
	if isScheduleRequest(msg.Text, b.api.Self.UserName) {
		rawURL, group := b.commandArgs(msg)
		b.handleWeek(msg, rawURL, group)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.handleStart(msg)
	case "week", "schedule_text":
		rawURL, group := b.commandArgs(msg)
		b.handleWeek(msg, rawURL, group)
	case "ics", "schedule_files":
		rawURL, group := b.commandArgs(msg)
		b.handleICS(msg, rawURL, group)
	case "plan", "schedule_plan":
		b.handlePlan(msg)
	}
}

// handlePrivateText answers arbitrary private messages with either the
// calendar files or the weekly digest.
func (b *Bot) handlePrivateText(msg *tgbotapi.Message) {
	rawURL, group := b.commandArgs(msg)
	lowered := strings.ToLower(msg.Text)
	if strings.Contains(lowered, "ics") || strings.Contains(lowered, "файл") {
		b.handleICS(msg, rawURL, group)
		return
	}
	b.handleWeek(msg, rawURL, group)
}

// isScheduleRequest reports whether a group-chat message asks for a schedule.
func isScheduleRequest(text, botUsername string) bool {
	lowered := strings.ToLower(text)
	if botUsername != "" && strings.Contains(lowered, "@"+strings.ToLower(botUsername)) {
		return true
	}
	if strings.Contains(lowered, "распис") {
		return true
	}
	for _, keyword := range triggerKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// commandArgs resolves the schedule URL and group from command arguments,
// falling back to the configured defaults.
func (b *Bot) commandArgs(msg *tgbotapi.Message) (rawURL, group string) {
	args := strings.Fields(msg.CommandArguments())
	return resolveArgs(args, b.cfg)
}

func resolveArgs(args []string, cfg *config.AppConfig) (rawURL, group string) {
	switch len(args) {
	case 0:
		return cfg.ScheduleURL, cfg.Group
	case 1:
		return args[0], cfg.Group
	default:
		return args[0], args[1]
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = replyKeyboard
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("could not send message", "chat", chatID, "error", err)
	}
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("could not send message", "chat", chatID, "error", err)
	}
}
