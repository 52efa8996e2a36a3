package bot

import (
	"fmt"
	"math"
	"unicode/utf8"

	"ascend/internal/models"
	"ascend/internal/training"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validateRequest проверяет запрос из чата до генерации
func validateRequest(req *models.ProgramRequest, allowedWeeks []int) error {
	if err := validateWeeks(req.Weeks, allowedWeeks); err != nil {
		return err
	}
	if err := validateSelectedDays(req.SelectedDays); err != nil {
		return err
	}
	for _, day := range req.SelectedDays {
		for _, ex := range req.ExercisesByDay[day] {
			if err := validateExerciseName(ex.Name); err != nil {
				return err
			}
			if err := validate1PM(ex.OneRepMax); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateWeeks validates program duration against the configured menu
func validateWeeks(weeks int, allowed []int) error {
	for _, w := range allowed {
		if weeks == w {
			return nil
		}
	}
	return ValidationError{
		Field:   "weeks",
		Message: fmt.Sprintf("Длительность %d нед. недоступна, выберите из: %s", weeks, formatWeeks(allowed)),
	}
}

// validateSelectedDays validates that at least one training day is chosen
func validateSelectedDays(days []models.Weekday) error {
	if len(days) == 0 {
		return ValidationError{Field: "days", Message: "Укажите хотя бы один день тренировок"}
	}
	return nil
}

// validateExerciseName validates exercise name; empty names are allowed
func validateExerciseName(name string) error {
	if utf8.RuneCountInString(name) > 100 {
		return ValidationError{Field: "exercise_name", Message: "Название слишком длинное (максимум 100 символов)"}
	}
	return nil
}

// validate1PM validates 1PM value. Empty and non-numeric values are allowed:
// such exercises get no load.
func validate1PM(oneRepMax string) error {
	v := training.ParseOneRepMax(oneRepMax)
	if math.IsNaN(v) {
		return nil
	}
	if v > 600 {
		return ValidationError{Field: "1pm", Message: "1ПМ слишком большой (максимум 600 кг)"}
	}
	return nil
}
