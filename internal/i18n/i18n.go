package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"ascend/internal/models"
)

//go:embed locales/*.json
var locales embed.FS

// Language представляет поддерживаемый язык
type Language string

const (
	LangRussian Language = "ru"
	LangEnglish Language = "en"
	DefaultLang Language = LangRussian
)

// translations хранит все переводы, загружаются один раз из встроенных файлов
var translations = struct {
	once sync.Once
	err  error
	data map[Language]map[string]string
}{}

func load() {
	translations.data = make(map[Language]map[string]string)
	for _, lang := range []Language{LangRussian, LangEnglish} {
		path := "locales/" + string(lang) + ".json"
		data, err := locales.ReadFile(path)
		if err != nil {
			translations.err = fmt.Errorf("ошибка чтения файла локализации %s: %w", path, err)
			return
		}

		var langData map[string]string
		if err := json.Unmarshal(data, &langData); err != nil {
			translations.err = fmt.Errorf("ошибка парсинга файла локализации %s: %w", path, err)
			return
		}
		translations.data[lang] = langData
	}
}

// Check возвращает ошибку загрузки встроенных переводов, если она была
func Check() error {
	translations.once.Do(load)
	return translations.err
}

// T возвращает перевод для указанного ключа и языка
func T(key string, lang Language) string {
	translations.once.Do(load)

	if langData, ok := translations.data[lang]; ok {
		if text, ok := langData[key]; ok {
			return text
		}
	}

	// Fallback на русский
	if lang != DefaultLang {
		if text, ok := translations.data[DefaultLang][key]; ok {
			return text
		}
	}

	return key
}

// Tf возвращает форматированный перевод
func Tf(key string, lang Language, args ...interface{}) string {
	template := T(key, lang)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// ParseLanguage преобразует строку в Language
func ParseLanguage(lang string) Language {
	switch Language(strings.ToLower(lang)) {
	case LangEnglish:
		return LangEnglish
	default:
		return LangRussian
	}
}

// DayName название дня недели
func DayName(day models.Weekday, lang Language) string {
	return T("day."+day.Key(), lang)
}

// PhaseName переводит название фазы ("Light" -> "Лёгкий"); неизвестное имя
// возвращается как есть
func PhaseName(name string, lang Language) string {
	key := "phase." + strings.ToLower(name)
	if text := T(key, lang); text != key {
		return text
	}
	return name
}

// PeriodName название типа периодизации
func PeriodName(t models.PeriodizationType, lang Language) string {
	key := "period." + string(t)
	if text := T(key, lang); text != key {
		return text
	}
	return string(t)
}
