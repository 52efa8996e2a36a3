package training

import (
	"errors"
	"fmt"

	"ascend/internal/models"
)

// ErrInvalidConfiguration неверные параметры генерации
var ErrInvalidConfiguration = errors.New("неверная конфигурация программы")

// ConfigError describes which generation parameter was rejected.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %q", ErrInvalidConfiguration, e.Field, e.Value)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Линейная периодизация: четыре недели по кругу
var linearCycle = [...]models.Phase{
	{Key: models.PhaseLight, Name: "Light", MinIntensity: 60, MaxIntensity: 70, Sets: "3-4", Reps: "12-15"},
	{Key: models.PhaseMedium, Name: "Medium", MinIntensity: 70, MaxIntensity: 80, Sets: "3-4", Reps: "8-12"},
	{Key: models.PhaseHeavy, Name: "Heavy", MinIntensity: 80, MaxIntensity: 90, Sets: "4-5", Reps: "5-8"},
	{Key: models.PhaseDeload, Name: "Deload", MinIntensity: 50, MaxIntensity: 60, Sets: "2-3", Reps: "10-15"},
}

// Волна несимметрична: Medium встречается дважды
var waveCycle = [...]models.Phase{
	{Key: models.PhaseLight, Name: "Light", MinIntensity: 60, MaxIntensity: 70, Sets: "3-4", Reps: "12-15"},
	{Key: models.PhaseMedium, Name: "Medium", MinIntensity: 70, MaxIntensity: 80, Sets: "3-4", Reps: "8-12"},
	{Key: models.PhaseHeavy, Name: "Heavy", MinIntensity: 80, MaxIntensity: 90, Sets: "4-5", Reps: "5-8"},
	{Key: models.PhaseMedium, Name: "Medium", MinIntensity: 70, MaxIntensity: 80, Sets: "3-4", Reps: "8-12"},
}

var blocks = [...]models.Phase{
	{Key: models.PhaseHypertrophy, Name: "Hypertrophy", MinIntensity: 65, MaxIntensity: 75, Sets: "4-5", Reps: "8-12"},
	{Key: models.PhaseStrength, Name: "Strength", MinIntensity: 75, MaxIntensity: 85, Sets: "4-5", Reps: "4-6"},
	{Key: models.PhasePower, Name: "Power", MinIntensity: 85, MaxIntensity: 95, Sets: "3-4", Reps: "3-5"},
	{Key: models.PhaseEndurance, Name: "Endurance", MinIntensity: 40, MaxIntensity: 60, Sets: "3-4", Reps: "15-20"},
}

// Phases returns a copy of the phase table used by the given periodization type.
func Phases(t models.PeriodizationType) []models.Phase {
	switch t {
	case models.PeriodLinear:
		return append([]models.Phase(nil), linearCycle[:]...)
	case models.PeriodWave:
		return append([]models.Phase(nil), waveCycle[:]...)
	case models.PeriodBlock:
		return append([]models.Phase(nil), blocks[:]...)
	}
	return nil
}

// Generate строит программу на weeks недель выбранным типом периодизации.
// selectedDays важен только для волны: порядок выбора дней задаёт сдвиг фазы.
// Входные данные не изменяются; каждый вызов возвращает новую программу.
func Generate(
	t models.PeriodizationType,
	weeks int,
	byDay models.ExercisesByDay,
	selectedDays []models.Weekday,
) (*models.Program, error) {
	if weeks < 1 {
		return nil, &ConfigError{Field: "weeks", Value: fmt.Sprint(weeks)}
	}

	var schedule []models.WeekSchedule
	switch t {
	case models.PeriodLinear:
		schedule = linearPeriodization(weeks, byDay)
	case models.PeriodWave:
		schedule = wavePeriodization(weeks, byDay, selectedDays)
	case models.PeriodBlock:
		schedule = blockPeriodization(weeks, byDay)
	default:
		return nil, &ConfigError{Field: "periodization", Value: string(t)}
	}

	return &models.Program{
		Type:       t,
		TotalWeeks: weeks,
		Weeks:      schedule,
	}, nil
}

// uniformWeek назначает одну фазу и одну интенсивность всем дням из byDay
func uniformWeek(week int, byDay models.ExercisesByDay, intensity float64, phase models.Phase) models.WeekSchedule {
	days := make([]models.DaySchedule, 0, len(byDay))
	for _, day := range models.Weekdays {
		exercises, ok := byDay[day]
		if !ok {
			continue
		}
		prescribed := make([]models.PrescribedExercise, len(exercises))
		for i, ex := range exercises {
			prescribed[i] = prescribe(ex, intensity, phase)
		}
		days = append(days, models.DaySchedule{Day: day, Exercises: prescribed})
	}
	return models.WeekSchedule{Week: week, Days: days}
}

func linearPeriodization(weeks int, byDay models.ExercisesByDay) []models.WeekSchedule {
	program := make([]models.WeekSchedule, weeks)
	for week := range program {
		phase := linearCycle[week%len(linearCycle)]
		intensity := EffectiveIntensity(phase.Midpoint(), ProgressionFactor(week, weeks))
		program[week] = uniformWeek(week, byDay, intensity, phase)
	}
	return program
}

func wavePeriodization(weeks int, byDay models.ExercisesByDay, selectedDays []models.Weekday) []models.WeekSchedule {
	program := make([]models.WeekSchedule, weeks)
	for week := range program {
		factor := ProgressionFactor(week, weeks)
		days := make([]models.DaySchedule, len(selectedDays))

		for dayIndex, day := range selectedDays {
			exercises := byDay[day]
			prescribed := make([]models.PrescribedExercise, len(exercises))
			for exerciseIndex, ex := range exercises {
				phase := waveCycle[WavePhaseIndex(week, dayIndex, exerciseIndex)]
				prescribed[exerciseIndex] = prescribe(ex, EffectiveIntensity(phase.Midpoint(), factor), phase)
			}
			days[dayIndex] = models.DaySchedule{Day: day, Exercises: prescribed}
		}
		program[week] = models.WeekSchedule{Week: week, Days: days}
	}
	return program
}

// WavePhaseIndex returns (exerciseIndex mod 4 + dayIndex + week) mod 4.
func WavePhaseIndex(week, dayIndex, exerciseIndex int) int {
	n := len(waveCycle)
	return (exerciseIndex%n + dayIndex + week) % n
}

// BlockDuration длительность одного блока: max(1, weeks/4)
func BlockDuration(weeks int) int {
	return max(1, weeks/len(blocks))
}

func blockPeriodization(weeks int, byDay models.ExercisesByDay) []models.WeekSchedule {
	program := make([]models.WeekSchedule, weeks)
	blockWeeks := BlockDuration(weeks)

	// Блоки идут по кругу, последний может оборваться на weeks
	for week := range program {
		phase := blocks[(week/blockWeeks)%len(blocks)]
		i := week % blockWeeks

		progress := 0.0
		if blockWeeks > 1 {
			progress = float64(i) / float64(blockWeeks-1)
		}
		base := phase.MinIntensity + (phase.MaxIntensity-phase.MinIntensity)*progress
		intensity := EffectiveIntensity(base, ProgressionFactor(week, weeks))
		program[week] = uniformWeek(week, byDay, intensity, phase)
	}
	return program
}

// GenerateRequest строит программу по запросу
func GenerateRequest(req *models.ProgramRequest) (*models.Program, error) {
	return Generate(req.Type, req.Weeks, req.ExercisesByDay, req.SelectedDays)
}
