package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// sendError sends a user-facing error message and logs the cause
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		b.logger.Warn("ошибка обработки сообщения", zap.Int64("chat", chatID), zap.Error(err))
	}
	msg := tgbotapi.NewMessage(chatID, userMessage)
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		b.logger.Error("failed to send error message", zap.Int64("chat", chatID), zap.Error(sendErr))
	}
}

// sendMessage sends message to user with error logging
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		b.logger.Error("failed to send message", zap.Int64("chat", chatID), zap.Error(err))
	}
	return err
}

// formatWeeks "4, 8, 12, 16"
func formatWeeks(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ", ")
}
