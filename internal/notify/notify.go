// Package notify delivers user-facing alert notifications. Telegram is the
// delivery channel when configured; otherwise alerts only reach the log.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier sends a single user-facing notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// TelegramNotifier sends notifications to a fixed chat via a Telegram bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier authorizes the bot and returns a notifier bound to the
// given chat.
func NewTelegramNotifier(botToken string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("Telegram notifier ready", zap.String("bot", bot.Self.UserName))
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// Notify sends one message combining title and body.
func (n *TelegramNotifier) Notify(_ context.Context, title, message string) error {
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("%s\n%s", title, message))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}
	return nil
}

// LogNotifier writes notifications to the log. It is the fallback when no
// delivery channel is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates the fallback notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification instead of delivering it.
func (n *LogNotifier) Notify(_ context.Context, title, message string) error {
	n.logger.Info("Alert notification", zap.String("title", title), zap.String("message", message))
	return nil
}
