package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken string

	LogLevel  string // debug, info, warn, error
	LogFormat string // console или json

	Lang      string // ru или en
	OutputDir string // куда сохранять выгрузки

	OneRMFormula  string // brzycki, epley, average
	AllowedWeeks  []int  // меню длительностей для бота
	WatchDebounce time.Duration
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile как Load, но с явным путём к .env. Отсутствие файла не ошибка,
// а нечитаемый или испорченный файл - ошибка.
func LoadFile(envPath string) (*Config, error) {
	env, err := godotenv.Read(envPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		env = make(map[string]string)
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения %s: %w", envPath, err)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		BotToken:     getEnv("ASCEND_BOT_TOKEN", ""),
		LogLevel:     getEnv("ASCEND_LOG_LEVEL", "info"),
		LogFormat:    getEnv("ASCEND_LOG_FORMAT", "console"),
		Lang:         getEnv("ASCEND_LANG", "ru"),
		OutputDir:    getEnv("ASCEND_OUTPUT_DIR", "."),
		OneRMFormula: getEnv("ASCEND_ONE_RM_FORMULA", "brzycki"),
	}

	cfg.AllowedWeeks, err = parseWeeks(getEnv("ASCEND_ALLOWED_WEEKS", "4,8,12,16"))
	if err != nil {
		return nil, fmt.Errorf("ASCEND_ALLOWED_WEEKS: %w", err)
	}

	cfg.WatchDebounce, err = time.ParseDuration(getEnv("ASCEND_WATCH_DEBOUNCE", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("ASCEND_WATCH_DEBOUNCE: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireBotToken проверяет, что токен задан (нужен только боту)
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("ASCEND_BOT_TOKEN не задан")
	}
	return nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("ASCEND_LOG_FORMAT: ожидается console или json, получено %q", c.LogFormat)
	}
	switch c.Lang {
	case "ru", "en":
	default:
		return fmt.Errorf("ASCEND_LANG: ожидается ru или en, получено %q", c.Lang)
	}
	switch c.OneRMFormula {
	case "brzycki", "epley", "average":
	default:
		return fmt.Errorf("ASCEND_ONE_RM_FORMULA: неизвестная формула %q", c.OneRMFormula)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("ASCEND_WATCH_DEBOUNCE не может быть отрицательным")
	}
	return nil
}

// parseWeeks разбирает список "4,8,12,16"
func parseWeeks(s string) ([]int, error) {
	var weeks []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("число недель должно быть положительным: %d", n)
		}
		weeks = append(weeks, n)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("пустой список")
	}
	return weeks, nil
}
