package formatter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ascend/internal/i18n"
	"ascend/internal/models"
	"ascend/internal/training"
)

func generate(t *testing.T, pt models.PeriodizationType, weeks int, byDay models.ExercisesByDay, selected []models.Weekday) *models.Program {
	t.Helper()
	program, err := training.Generate(pt, weeks, byDay, selected)
	if err != nil {
		t.Fatalf("Generate(%s, %d) error = %v", pt, weeks, err)
	}
	return program
}

func benchMonday(oneRM string) models.ExercisesByDay {
	byDay := models.NewExercisesByDay()
	byDay[models.Monday] = []models.Exercise{{Name: "Жим лёжа", OneRepMax: oneRM}}
	return byDay
}

func TestVisibleDays(t *testing.T) {
	week := models.WeekSchedule{Days: []models.DaySchedule{
		{Day: models.Monday}, {Day: models.Tuesday}, {Day: models.Wednesday}, {Day: models.Friday},
	}}

	got := VisibleDays(week, []models.Weekday{models.Friday, models.Monday})
	var days []models.Weekday
	for _, d := range got {
		days = append(days, d.Day)
	}
	if diff := cmp.Diff([]models.Weekday{models.Monday, models.Friday}, days); diff != "" {
		t.Errorf("VisibleDays() (-want +got):\n%s", diff)
	}

	if got := VisibleDays(week, nil); len(got) != 0 {
		t.Errorf("VisibleDays(nil) = %v, want empty", got)
	}
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		pt   models.PeriodizationType
		lang i18n.Language
		want []string
	}{
		{models.PeriodLinear, i18n.LangRussian, []string{"Упражнение", "Интенсивность", "Вес (кг)", "Подходы", "Повторения"}},
		{models.PeriodWave, i18n.LangRussian, []string{"Упражнение", "Интенсивность", "Вес (кг)", "Подходы", "Повторения", "Сложность"}},
		{models.PeriodBlock, i18n.LangEnglish, []string{"Exercise", "Intensity", "Load (kg)", "Sets", "Reps", "Cycle"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Headers(tt.pt, tt.lang)); diff != "" {
				t.Errorf("Headers() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCells_NaNLoad(t *testing.T) {
	ex := models.PrescribedExercise{
		Exercise:         models.Exercise{Name: "Присед", OneRepMax: "abc"},
		IntensityPercent: 72,
		WeightLoad:       models.NaNLoad(),
		Sets:             "3-4",
		Reps:             "8-12",
		PhaseName:        "Medium",
	}

	got := Cells(models.PeriodWave, ex, i18n.LangRussian)
	want := []string{"Присед", "72%", "—", "3-4", "8-12", "Средний"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cells() (-want +got):\n%s", diff)
	}
}

func TestFormatProgram_Linear(t *testing.T) {
	byDay := benchMonday("100")
	byDay[models.Wednesday] = []models.Exercise{{Name: "Присед", OneRepMax: "140"}}
	program := generate(t, models.PeriodLinear, 4, byDay, []models.Weekday{models.Monday})

	out := NewTextFormatter(i18n.LangRussian).FormatProgram(program, []models.Weekday{models.Monday})

	for _, want := range []string{
		"Программа: Линейная периодизация, 4 нед.",
		"НЕДЕЛЯ 1 | Лёгкий",
		"НЕДЕЛЯ 4 | Разгрузка",
		"Понедельник",
		"1. Жим лёжа",
		"Интенсивность: 65% | Вес (кг): 65 | Подходы: 3-4 | Повторения: 12-15\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatProgram() missing %q in:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"Среда", "Присед", "Сложность", "Цикл:"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("FormatProgram() should not contain %q", unwanted)
		}
	}
}

func TestFormatProgram_PhaseColumns(t *testing.T) {
	tests := []struct {
		name string
		pt   models.PeriodizationType
		lang i18n.Language
		want string
	}{
		{"wave difficulty", models.PeriodWave, i18n.LangRussian, "Повторения: 12-15 | Сложность: Лёгкий"},
		{"block cycle", models.PeriodBlock, i18n.LangRussian, "Повторения: 8-12 | Цикл: Гипертрофия"},
		{"block english", models.PeriodBlock, i18n.LangEnglish, "Reps: 8-12 | Cycle: Hypertrophy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := []models.Weekday{models.Monday}
			program := generate(t, tt.pt, 4, benchMonday("100"), selected)
			out := NewTextFormatter(tt.lang).FormatProgram(program, selected)
			if !strings.Contains(out, tt.want) {
				t.Errorf("FormatProgram() missing %q in:\n%s", tt.want, out)
			}
		})
	}
}

func TestFormatProgram_NaNAndEmptySelection(t *testing.T) {
	program := generate(t, models.PeriodLinear, 4, benchMonday(""), []models.Weekday{models.Monday})
	f := NewTextFormatter(i18n.LangRussian)

	out := f.FormatProgram(program, []models.Weekday{models.Monday})
	if !strings.Contains(out, "Вес (кг): —") {
		t.Errorf("FormatProgram() should render missing load as dash:\n%s", out)
	}

	out = f.FormatProgram(program, nil)
	if got := strings.Count(out, "Нет выбранных дней"); got != 4 {
		t.Errorf("empty selection marker count = %d, want 4", got)
	}
}

func TestFormatComparison(t *testing.T) {
	selected := []models.Weekday{models.Monday}
	programs := map[models.PeriodizationType]*models.Program{
		models.PeriodBlock:  generate(t, models.PeriodBlock, 4, benchMonday("100"), selected),
		models.PeriodLinear: generate(t, models.PeriodLinear, 4, benchMonday("100"), selected),
	}

	out := NewTextFormatter(i18n.LangEnglish).FormatComparison(programs)

	linear := strings.Index(out, "Linear")
	block := strings.Index(out, "Block")
	if linear < 0 || block < 0 || linear > block {
		t.Errorf("FormatComparison() order wrong:\n%s", out)
	}
	if !strings.Contains(out, "Light 65%") || !strings.Contains(out, "Hypertrophy 65%") {
		t.Errorf("FormatComparison() missing week intensities:\n%s", out)
	}
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"fits", "abc\ndef\n", 100, []string{"abc\ndef\n"}},
		{"by lines", "aaaa\nbbbb\ncccc\n", 10, []string{"aaaa\nbbbb\n", "cccc\n"}},
		{"long line", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"rune boundary", "ёёё", 3, []string{"ё", "ё", "ё"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMessage(tt.text, tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitMessage() (-want +got):\n%s", diff)
			}
			if strings.Join(got, "") != tt.text {
				t.Error("SplitMessage() parts do not add up to the input")
			}
		})
	}
}
