package excel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"ascend/internal/formatter"
	"ascend/internal/i18n"
	"ascend/internal/models"
	"ascend/internal/training"
)

// Exporter выгружает программу в xlsx: сводный лист и по листу на неделю
type Exporter struct {
	outputDir string
	lang      i18n.Language
}

// NewExporter создаёт экспортёр, сохраняющий файлы в outputDir
func NewExporter(outputDir string, lang i18n.Language) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		lang:      lang,
	}
}

// Build собирает книгу. Показываются только выбранные дни; вес, который
// не удалось рассчитать, остаётся пустой ячейкой.
func (e *Exporter) Build(program *models.Program, selected []models.Weekday) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := sanitizeSheetName(i18n.T("sheet.summary", e.lang))
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		f.Close()
		return nil, fmt.Errorf("ошибка создания листа: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dayStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		f.Close()
		return nil, err
	}

	phaseStyles := make(map[models.PhaseKey]int, len(difficultyColors))
	if program.Type == models.PeriodWave {
		for key, color := range difficultyColors {
			id, err := f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			})
			if err != nil {
				f.Close()
				return nil, err
			}
			phaseStyles[key] = id
		}
	}

	f.SetCellValue(summary, "A1", i18n.Tf("program.header", e.lang, i18n.PeriodName(program.Type, e.lang), program.TotalWeeks))
	f.SetCellStyle(summary, "A1", "A1", titleStyle)
	days := make([]string, 0, len(selected))
	for _, d := range selected {
		days = append(days, i18n.DayName(d, e.lang))
	}
	f.SetCellValue(summary, "A2", strings.Join(days, ", "))
	e.writePhases(f, summary, program.Type, headerStyle)
	f.SetColWidth(summary, "A", "A", 60)

	headers := formatter.Headers(program.Type, e.lang)
	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	for _, week := range program.Weeks {
		sheet := sanitizeSheetName(i18n.Tf("program.week", e.lang, week.Week+1))
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("ошибка создания листа %s: %w", sheet, err)
		}

		visible := formatter.VisibleDays(week, selected)
		if len(visible) == 0 {
			f.SetCellValue(sheet, "A1", i18n.T("program.empty", e.lang))
		}

		row := 1
		for _, day := range visible {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i18n.DayName(day.Day, e.lang))
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), dayStyle)
			row++

			for i, h := range headers {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, h)
			}
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
			row++

			for _, ex := range day.Exercises {
				e.writeExercise(f, sheet, row, program.Type, ex, phaseStyles)
				row++
			}
			row++ // Пустая строка между днями
		}

		// Ширина столбцов
		f.SetColWidth(sheet, "A", "A", 25)
		f.SetColWidth(sheet, "B", "C", 14)
		f.SetColWidth(sheet, "D", "E", 12)
		f.SetColWidth(sheet, "F", "F", 14)
	}

	return f, nil
}

// difficultyColors заливка ячейки "Сложность" волновой программы
var difficultyColors = map[models.PhaseKey]string{
	models.PhaseLight:  "#DCFCE7",
	models.PhaseMedium: "#FEF9C3",
	models.PhaseHeavy:  "#FEE2E2",
}

// phaseKey находит ключ фазы по её имени в таблице фаз
func phaseKey(t models.PeriodizationType, name string) (models.PhaseKey, bool) {
	for _, p := range training.Phases(t) {
		if p.Name == name {
			return p.Key, true
		}
	}
	return "", false
}

// writePhases добавляет на сводный лист таблицу фаз: интенсивность, подходы, повторы
func (e *Exporter) writePhases(f *excelize.File, sheet string, t models.PeriodizationType, headerStyle int) {
	headers := []string{
		i18n.T("column."+t.PhaseLabel(), e.lang),
		i18n.T("column.intensity", e.lang),
		i18n.T("column.sets", e.lang),
		i18n.T("column.reps", e.lang),
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A4", "D4", headerStyle)

	row := 5
	seen := make(map[models.PhaseKey]bool)
	for _, p := range training.Phases(t) {
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i18n.PhaseName(p.Name, e.lang))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%g-%g%%", p.MinIntensity, p.MaxIntensity))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Sets)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Reps)
		row++
	}
	f.SetColWidth(sheet, "B", "D", 14)
}

// writeExercise заполняет строку упражнения; интенсивность и вес пишутся числами.
// Ячейка фазы окрашивается, если для фазы есть стиль.
func (e *Exporter) writeExercise(f *excelize.File, sheet string, row int, t models.PeriodizationType, ex models.PrescribedExercise, phaseStyles map[models.PhaseKey]int) {
	cells := formatter.Cells(t, ex, e.lang)
	for i, v := range cells {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		switch i {
		case 1:
			f.SetCellValue(sheet, cell, ex.IntensityPercent)
		case 2:
			if !ex.WeightLoad.IsNaN() {
				f.SetCellValue(sheet, cell, float64(ex.WeightLoad))
			}
		case 5:
			f.SetCellValue(sheet, cell, v)
			if key, ok := phaseKey(t, ex.PhaseName); ok {
				if style, ok := phaseStyles[key]; ok {
					f.SetCellStyle(sheet, cell, cell, style)
				}
			}
		default:
			f.SetCellValue(sheet, cell, v)
		}
	}
}

// Write пишет книгу в w, например в буфер для отправки в Telegram
func (e *Exporter) Write(w io.Writer, program *models.Program, selected []models.Weekday) error {
	f, err := e.Build(program, selected)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}
	return nil
}

// Save сохраняет книгу в каталог экспортёра под уникальным именем
func (e *Exporter) Save(program *models.Program, selected []models.Weekday) (string, error) {
	return e.SaveAs(filepath.Join(e.outputDir, FileName(program)), program, selected)
}

// SaveAs сохраняет книгу по указанному пути
func (e *Exporter) SaveAs(path string, program *models.Program, selected []models.Weekday) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("ошибка создания директории: %w", err)
	}

	f, err := e.Build(program, selected)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("ошибка сохранения файла: %w", err)
	}
	return path, nil
}

// FileName имя файла программы: тип, число недель и короткий uuid
func FileName(program *models.Program) string {
	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return sanitizeFilename(fmt.Sprintf("program_%s_%dw_%s.xlsx", program.Type, program.TotalWeeks, id))
}

func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	return result
}

// sanitizeSheetName убирает символы, запрещённые в названии листа
func sanitizeSheetName(name string) string {
	return strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")").Replace(name)
}
