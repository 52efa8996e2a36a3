package formatter

import (
	"fmt"
	"sort"
	"strings"

	"ascend/internal/i18n"
	"ascend/internal/models"
)

// TelegramMessageLimit максимальная длина сообщения Telegram
const TelegramMessageLimit = 4096

// TextFormatter - текстовый вывод программы для терминала и Telegram
type TextFormatter struct {
	lang i18n.Language
}

// NewTextFormatter создаёт новый форматтер
func NewTextFormatter(lang i18n.Language) *TextFormatter {
	return &TextFormatter{lang: lang}
}

// VisibleDays returns the days of week that are currently selected, in the order
// the week lists them. Linear and block weeks carry every configured day and wave
// weeks only the selected ones, so the filter is applied here for all types.
func VisibleDays(week models.WeekSchedule, selected []models.Weekday) []models.DaySchedule {
	var days []models.DaySchedule
	for _, d := range week.Days {
		for _, s := range selected {
			if d.Day == s {
				days = append(days, d)
				break
			}
		}
	}
	return days
}

// Headers заголовки столбцов таблицы: для волны добавляется "Сложность",
// для блочной "Цикл"
func Headers(t models.PeriodizationType, lang i18n.Language) []string {
	headers := []string{
		i18n.T("column.exercise", lang),
		i18n.T("column.intensity", lang),
		i18n.T("column.load", lang),
		i18n.T("column.sets", lang),
		i18n.T("column.reps", lang),
	}
	if label := phaseColumn(t); label != "" {
		headers = append(headers, i18n.T("column."+label, lang))
	}
	return headers
}

// Cells значения строки таблицы для упражнения
func Cells(t models.PeriodizationType, ex models.PrescribedExercise, lang i18n.Language) []string {
	cells := []string{
		ex.Name,
		fmt.Sprintf("%d%%", ex.IntensityPercent),
		ex.WeightLoad.String(),
		ex.Sets,
		ex.Reps,
	}
	if phaseColumn(t) != "" {
		cells = append(cells, i18n.PhaseName(ex.PhaseName, lang))
	}
	return cells
}

// phaseColumn столбец фазы: у линейной его нет
func phaseColumn(t models.PeriodizationType) string {
	if t == models.PeriodLinear {
		return ""
	}
	return t.PhaseLabel()
}

// weekPhase фаза недели для линейной и блочной периодизации, где она общая
func weekPhase(program *models.Program, week models.WeekSchedule) string {
	if program.Type == models.PeriodWave {
		return ""
	}
	for _, d := range week.Days {
		if len(d.Exercises) > 0 {
			return d.Exercises[0].PhaseName
		}
	}
	return ""
}

// FormatProgram форматирует всю программу, показывая только выбранные дни
func (f *TextFormatter) FormatProgram(program *models.Program, selected []models.Weekday) string {
	var sb strings.Builder

	sb.WriteString(i18n.Tf("program.header", f.lang, i18n.PeriodName(program.Type, f.lang), program.TotalWeeks))
	sb.WriteString("\n\n")

	for _, week := range program.Weeks {
		sb.WriteString(f.formatWeek(program, week, selected))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// formatWeek форматирует неделю
func (f *TextFormatter) formatWeek(program *models.Program, week models.WeekSchedule, selected []models.Weekday) string {
	var sb strings.Builder

	header := strings.ToUpper(i18n.Tf("program.week", f.lang, week.Week+1))
	if phase := weekPhase(program, week); phase != "" {
		header += " | " + i18n.PhaseName(phase, f.lang)
	}
	sb.WriteString("┌─────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("│ %s\n", header))
	sb.WriteString("└─────────────────────────────────\n")

	days := VisibleDays(week, selected)
	if len(days) == 0 {
		sb.WriteString(i18n.T("program.empty", f.lang) + "\n")
		return sb.String()
	}

	headers := Headers(program.Type, f.lang)
	for _, day := range days {
		sb.WriteString("\n")
		sb.WriteString(i18n.DayName(day.Day, f.lang) + "\n")
		sb.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
		for i, ex := range day.Exercises {
			cells := Cells(program.Type, ex, f.lang)
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, cells[0]))

			params := make([]string, 0, len(cells)-1)
			for j := 1; j < len(cells); j++ {
				params = append(params, headers[j]+": "+cells[j])
			}
			sb.WriteString("   " + strings.Join(params, " | ") + "\n")
		}
	}

	return sb.String()
}

// FormatComparison краткая сводка интенсивности по неделям для нескольких программ
func (f *TextFormatter) FormatComparison(programs map[models.PeriodizationType]*models.Program) string {
	types := make([]models.PeriodizationType, 0, len(programs))
	for t := range programs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return typeOrder(types[i]) < typeOrder(types[j]) })

	var sb strings.Builder
	for _, t := range types {
		program := programs[t]
		sb.WriteString(i18n.PeriodName(t, f.lang) + "\n")
		for _, week := range program.Weeks {
			sb.WriteString(fmt.Sprintf("  %-10s %s\n", i18n.Tf("program.week", f.lang, week.Week+1), weekIntensities(week, f.lang)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// weekIntensities перечисляет различные пары "фаза интенсивность%" недели по порядку
func weekIntensities(week models.WeekSchedule, lang i18n.Language) string {
	var parts []string
	seen := make(map[string]bool)
	for _, d := range week.Days {
		for _, ex := range d.Exercises {
			part := fmt.Sprintf("%s %d%%", i18n.PhaseName(ex.PhaseName, lang), ex.IntensityPercent)
			if !seen[part] {
				seen[part] = true
				parts = append(parts, part)
			}
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}

func typeOrder(t models.PeriodizationType) int {
	for i, pt := range models.PeriodizationTypes {
		if pt == t {
			return i
		}
	}
	return len(models.PeriodizationTypes)
}

// SplitMessage разбивает текст на части не длиннее limit байт по границам строк.
// Строка длиннее limit режется по границе руны.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			cut := limit
			for cut > 0 && !isRuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
