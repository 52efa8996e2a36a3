package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Exercise упражнение в том виде, в каком его ввёл пользователь
type Exercise struct {
	Name      string `json:"name" yaml:"name"`
	OneRepMax string `json:"one_rep_max" yaml:"one_rep_max"` // 1ПМ строкой, как в форме ввода
}

// ExercisesByDay упражнения по дням недели; порядок внутри дня значим
type ExercisesByDay map[Weekday][]Exercise

// NewExercisesByDay возвращает карту со всеми семью днями и пустыми списками
func NewExercisesByDay() ExercisesByDay {
	byDay := make(ExercisesByDay, len(Weekdays))
	for _, d := range Weekdays {
		byDay[d] = []Exercise{}
	}
	return byDay
}

// Load рабочий вес в кг: целое число либо NaN, если 1ПМ не удалось разобрать
type Load float64

// NaNLoad значение веса для нечислового 1ПМ
func NaNLoad() Load {
	return Load(math.NaN())
}

// IsNaN reports whether the load could not be computed.
func (l Load) IsNaN() bool {
	return math.IsNaN(float64(l))
}

func (l Load) String() string {
	if l.IsNaN() {
		return "—"
	}
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

// MarshalJSON кодирует NaN как null
func (l Load) MarshalJSON() ([]byte, error) {
	if l.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(l))
}

// UnmarshalJSON читает null обратно как NaN
func (l *Load) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = NaNLoad()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = Load(v)
	return nil
}

// PrescribedExercise упражнение с рассчитанной нагрузкой на конкретную неделю
type PrescribedExercise struct {
	Exercise
	IntensityPercent int    `json:"intensity_percent"` // % от 1ПМ, 0..95
	WeightLoad       Load   `json:"weight_load"`
	Sets             string `json:"sets"` // "3-4"
	Reps             string `json:"reps"` // "8-12"
	PhaseName        string `json:"phase_name"`
}

// DaySchedule упражнения одного дня в неделе
type DaySchedule struct {
	Day       Weekday              `json:"day"`
	Exercises []PrescribedExercise `json:"exercises"`
}

// WeekSchedule расписание одной недели
type WeekSchedule struct {
	Week int           `json:"week"` // 0 = первая неделя
	Days []DaySchedule `json:"days"`
}

// Exercises returns the prescriptions for day and whether the day is present in the week.
func (w WeekSchedule) Exercises(day Weekday) ([]PrescribedExercise, bool) {
	for _, d := range w.Days {
		if d.Day == day {
			return d.Exercises, true
		}
	}
	return nil, false
}

// Program сгенерированная программа, по одной записи на неделю
type Program struct {
	Type       PeriodizationType `json:"type"`
	TotalWeeks int               `json:"total_weeks"`
	Weeks      []WeekSchedule    `json:"weeks"`
}
