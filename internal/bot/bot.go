package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"ascend/internal/config"
	"ascend/internal/excel"
	"ascend/internal/i18n"
	"ascend/internal/training"
)

// sender часть tgbotapi.BotAPI, которой пользуется бот
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot представляет Telegram бота
type Bot struct {
	api          sender
	logger       *zap.Logger
	formula      training.Formula
	lang         i18n.Language
	allowedWeeks []int
	exporter     *excel.Exporter
}

// New создаёт новый экземпляр бота
func New(api sender, cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	formula, err := training.ParseFormula(cfg.OneRMFormula)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	lang := i18n.ParseLanguage(cfg.Lang)
	return &Bot{
		api:          api,
		logger:       logger,
		formula:      formula,
		lang:         lang,
		allowedWeeks: cfg.AllowedWeeks,
		exporter:     excel.NewExporter(cfg.OutputDir, lang),
	}, nil
}

// Run обрабатывает обновления, пока не закроется канал или не отменится ctx
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

// langFor язык ответа: английский для англоязычного клиента Telegram,
// иначе язык из конфигурации
func (b *Bot) langFor(msg *tgbotapi.Message) i18n.Language {
	if msg.From != nil && strings.HasPrefix(msg.From.LanguageCode, "en") {
		return i18n.LangEnglish
	}
	return b.lang
}
