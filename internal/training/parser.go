package training

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ascend/internal/models"
)

// Упражнение в строке дня: "Жим лёжа 100", "Присед 100x5", "Тяга 120,5"
var itemPattern = regexp.MustCompile(`^(.+?)\s+(\d+(?:[.,]\d+)?)(?:\s*[xх×]\s*(\d+))?$`)

// Parse разбирает запрос программы из текста сообщения:
//
//	wave 8
//	Понедельник: Жим лёжа 100; Присед 100x5
//	Среда: Становая тяга 180
//
// Первая строка: тип периодизации и число недель. Порядок строк дней задаёт порядок
// выбора. "вес x повторы" пересчитывается в 1ПМ формулой f.
func Parse(text string, f Formula) (*models.ProgramRequest, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("пустой текст")
	}

	req := &models.ProgramRequest{ExercisesByDay: models.NewExercisesByDay()}
	if err := parseHeader(strings.TrimSpace(lines[0]), req); err != nil {
		return nil, err
	}

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		dayPart, itemsPart, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("строка %d: ожидается \"День: упражнения\"", i+1)
		}
		day, err := models.ParseWeekday(dayPart)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", i+1, err)
		}

		var exercises []models.Exercise
		for _, item := range strings.Split(itemsPart, ";") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			exercises = append(exercises, parseItem(item, f))
		}

		req.ExercisesByDay[day] = append(req.ExercisesByDay[day], exercises...)
		req.SelectedDays = append(req.SelectedDays, day)
	}

	req.Normalize()
	return req, nil
}

// parseHeader разбирает "wave 8" или "волновая 8 недель"
func parseHeader(line string, req *models.ProgramRequest) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("первая строка: ожидается \"<тип> <недели>\", получено %q", line)
	}

	t, err := models.ParsePeriodizationType(fields[0])
	if err != nil {
		return err
	}
	weeks, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("число недель: %w", err)
	}

	req.Type = t
	req.Weeks = weeks
	return nil
}

// parseItem разбирает одно упражнение. Без числа 1ПМ остаётся пустым.
func parseItem(item string, f Formula) models.Exercise {
	matches := itemPattern.FindStringSubmatch(item)
	if matches == nil {
		return models.Exercise{Name: item}
	}

	ex := models.Exercise{
		Name:      strings.TrimSpace(matches[1]),
		OneRepMax: strings.Replace(matches[2], ",", ".", 1),
	}
	if matches[3] != "" {
		weight, _ := strconv.ParseFloat(ex.OneRepMax, 64)
		reps, _ := strconv.Atoi(matches[3])
		ex.OneRepMax = FormatOneRepMax(Estimate1PM(weight, reps, f))
	}
	return ex
}
