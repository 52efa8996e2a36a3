package bot

import (
	"bytes"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"ascend/internal/excel"
	"ascend/internal/formatter"
	"ascend/internal/i18n"
	"ascend/internal/training"
)

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	lang := b.langFor(msg)

	if msg.IsCommand() {
		b.handleCommand(chatID, msg.Command(), lang)
		return
	}

	b.handleProgram(chatID, msg.Text, lang)
}

// handleCommand на /start, /help и любую неизвестную команду отвечает справкой
func (b *Bot) handleCommand(chatID int64, command string, lang i18n.Language) {
	b.logger.Debug("команда", zap.Int64("chat", chatID), zap.String("command", command))
	b.sendMessage(chatID, i18n.Tf("bot.help", lang, formatWeeks(b.allowedWeeks)))
}

// handleProgram разбирает сообщение, строит программу и отвечает текстом и xlsx
func (b *Bot) handleProgram(chatID int64, text string, lang i18n.Language) {
	req, err := training.Parse(text, b.formula)
	if err != nil {
		b.sendError(chatID, i18n.Tf("bot.error", lang, err), err)
		return
	}
	if err := validateRequest(req, b.allowedWeeks); err != nil {
		var ve ValidationError
		if errors.As(err, &ve) {
			b.sendError(chatID, i18n.Tf("bot.error", lang, ve.Message), nil)
			return
		}
		b.sendError(chatID, i18n.Tf("bot.error", lang, err), err)
		return
	}

	program, err := training.GenerateRequest(req)
	if err != nil {
		b.sendError(chatID, i18n.Tf("bot.error", lang, err), err)
		return
	}

	b.logger.Info("программа составлена",
		zap.Int64("chat", chatID),
		zap.String("type", string(program.Type)),
		zap.Int("weeks", program.TotalWeeks),
		zap.Int("days", len(req.SelectedDays)),
	)

	rendered := formatter.NewTextFormatter(lang).FormatProgram(program, req.SelectedDays)
	for _, part := range formatter.SplitMessage(rendered, formatter.TelegramMessageLimit) {
		if err := b.sendMessage(chatID, part); err != nil {
			return
		}
	}

	var buf bytes.Buffer
	exporter := b.exporter
	if lang != b.lang {
		exporter = excel.NewExporter("", lang)
	}
	if err := exporter.Write(&buf, program, req.SelectedDays); err != nil {
		b.logger.Error("ошибка выгрузки xlsx", zap.Int64("chat", chatID), zap.Error(err))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  excel.FileName(program),
		Bytes: buf.Bytes(),
	})
	doc.Caption = i18n.T("bot.caption", lang)
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("ошибка отправки файла", zap.Int64("chat", chatID), zap.Error(err))
	}
}
