package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot adapts the Controller to Telegram long polling. It owns no dialog
// logic: commands and texts go straight to the controller, replies go
// straight back out.
type Bot struct {
	api  *tgbotapi.BotAPI
	ctrl *Controller
}

// NewBot authorizes against the Telegram API.
func NewBot(token string, ctrl *Controller) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("bot: telegram auth: %w", err)
	}
	slog.Info("bot: authorized", slog.String("username", api.Self.UserName))
	return &Bot{api: api, ctrl: ctrl}, nil
}

// Run polls for updates until ctx is cancelled. Updates are handled
// sequentially, so a session never processes two inputs at once.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("bot: stopped")
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handle(update.Message)
		}
	}
}

func (b *Bot) handle(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	var replies []Reply
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		replies = b.ctrl.Start(chatID)
	case msg.IsCommand() && msg.Command() == "cancel":
		replies = b.ctrl.Cancel(chatID)
	case msg.IsCommand():
		replies = []Reply{text("Не знаю такой команды. Доступны /start и /cancel.")}
	default:
		replies = b.ctrl.Input(chatID, msg.Text)
	}

	for _, r := range replies {
		b.send(chatID, r)
	}
}

func (b *Bot) send(chatID int64, r Reply) {
	var msg tgbotapi.Chattable
	if r.Photo != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "chart.png", Bytes: r.Photo})
		photo.Caption = r.Caption
		msg = photo
	} else {
		msg = tgbotapi.NewMessage(chatID, r.Text)
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("bot: send failed", slog.Int64("chat", chatID), slog.Any("error", err))
	}
}
