package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"maritime-maintenance/internal/logger"
	"maritime-maintenance/internal/telegram"
)

const pollTimeout = 30 * time.Second

// UpdateSource long-polls for incoming bot messages.
type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error)
}

// Bot answers /start with the chat id a user must paste into their profile.
type Bot struct {
	updates UpdateSource
	sender  Sender
	backoff time.Duration
	log     *logger.Logger
}

// NewBot creates a /start responder.
func NewBot(updates UpdateSource, sender Sender) *Bot {
	return &Bot{
		updates: updates,
		sender:  sender,
		backoff: 5 * time.Second,
		log:     logger.New().WithField("component", "bot"),
	}
}

// Run polls until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("Bot is polling for commands")

	var offset int64
	for {
		if ctx.Err() != nil {
			b.log.Info("Bot stopped")
			return nil
		}

		updates, err := b.updates.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.log.WithError(err).Warn("Failed to fetch updates")
			select {
			case <-ctx.Done():
			case <-time.After(b.backoff):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if err := b.HandleUpdate(ctx, u); err != nil {
				b.log.WithError(err).WithField("update_id", u.UpdateID).Error("Failed to handle update")
			}
		}
	}
}

// HandleUpdate replies to a single update if it is a /start command.
func (b *Bot) HandleUpdate(ctx context.Context, u telegram.Update) error {
	if u.Message == nil || !isStartCommand(u.Message.Text) {
		return nil
	}

	chatID := u.Message.Chat.ID
	name := ""
	if u.Message.From != nil {
		name = u.Message.From.FirstName
	}

	b.log.WithField("chat_id", chatID).Info("Received /start")
	return b.sender.SendMessage(ctx, chatID, StartReply(name, chatID))
}

// StartReply is the greeting sent in response to /start.
func StartReply(firstName string, chatID int64) string {
	greeting := "Здравствуйте!"
	if firstName != "" {
		greeting = fmt.Sprintf("Здравствуйте, %s!", html.EscapeString(firstName))
	}
	return greeting + "\n\n" +
		"Чтобы получать уведомления, используйте этот ID в вашем профиле на сайте:\n\n" +
		fmt.Sprintf("<code>%d</code>\n\n", chatID) +
		"Просто скопируйте его и вставьте в поле 'Telegram ID', а затем оформите подписку на необходимые компоненты."
}

// isStartCommand accepts "/start", "/start payload" and "/start@BotName".
func isStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd == "/start"
}
