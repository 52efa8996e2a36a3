package models

// DefaultExerciseName упражнение, которое подставляется в первый выбранный пустой день
const DefaultExerciseName = "Жим лёжа"

// ProgramRequest входные данные генератора
type ProgramRequest struct {
	Type           PeriodizationType
	Weeks          int
	ExercisesByDay ExercisesByDay
	SelectedDays   []Weekday // в порядке выбора пользователем
}

// Normalize приводит запрос к виду, который гарантирует форма ввода:
// все семь дней присутствуют, выбранные дни не повторяются, а пустой выбранный
// день получает одно упражнение с пустым 1ПМ (первый по порядку получает "Жим лёжа").
func (r *ProgramRequest) Normalize() {
	byDay := NewExercisesByDay()
	for day, exercises := range r.ExercisesByDay {
		if day.Valid() {
			byDay[day] = append([]Exercise{}, exercises...)
		}
	}

	seen := make(map[Weekday]bool, len(r.SelectedDays))
	selected := make([]Weekday, 0, len(r.SelectedDays))
	for _, day := range r.SelectedDays {
		if !day.Valid() || seen[day] {
			continue
		}
		seen[day] = true

		if len(byDay[day]) == 0 {
			name := ""
			if len(selected) == 0 {
				name = DefaultExerciseName
			}
			byDay[day] = []Exercise{{Name: name}}
		}
		selected = append(selected, day)
	}

	r.ExercisesByDay = byDay
	r.SelectedDays = selected
}

