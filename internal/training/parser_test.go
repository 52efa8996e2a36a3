package training

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ascend/internal/models"
)

func TestParse(t *testing.T) {
	text := `wave 8
Среда: Становая тяга 180; Подтягивания
понедельник: Жим лёжа 100; Присед 100x5`

	req, err := Parse(text, FormulaBrzycki)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if req.Type != models.PeriodWave || req.Weeks != 8 {
		t.Errorf("header = %s %d, want wave 8", req.Type, req.Weeks)
	}
	if diff := cmp.Diff([]models.Weekday{models.Wednesday, models.Monday}, req.SelectedDays); diff != "" {
		t.Errorf("SelectedDays (-want +got):\n%s", diff)
	}

	wantMonday := []models.Exercise{
		{Name: "Жим лёжа", OneRepMax: "100"},
		{Name: "Присед", OneRepMax: "112.5"},
	}
	if diff := cmp.Diff(wantMonday, req.ExercisesByDay[models.Monday]); diff != "" {
		t.Errorf("Monday (-want +got):\n%s", diff)
	}

	wantWednesday := []models.Exercise{
		{Name: "Становая тяга", OneRepMax: "180"},
		{Name: "Подтягивания"},
	}
	if diff := cmp.Diff(wantWednesday, req.ExercisesByDay[models.Wednesday]); diff != "" {
		t.Errorf("Wednesday (-want +got):\n%s", diff)
	}

	if len(req.ExercisesByDay) != 7 {
		t.Errorf("len(ExercisesByDay) = %d, want 7", len(req.ExercisesByDay))
	}
}

func TestParse_Items(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.Exercise
	}{
		{"plain", "Пн: Жим лёжа 100", models.Exercise{Name: "Жим лёжа", OneRepMax: "100"}},
		{"comma decimal", "Пн: Жим лёжа 102,5", models.Exercise{Name: "Жим лёжа", OneRepMax: "102.5"}},
		{"cyrillic x", "Пн: Присед 100х5", models.Exercise{Name: "Присед", OneRepMax: "112.5"}},
		{"spaced x", "Пн: Присед 100 x 5", models.Exercise{Name: "Присед", OneRepMax: "112.5"}},
		{"no number", "Пн: Планка", models.Exercise{Name: "Планка"}},
		{"english day", "monday: Bench Press 100", models.Exercise{Name: "Bench Press", OneRepMax: "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse("linear 4\n"+tt.line, FormulaBrzycki)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := req.ExercisesByDay[models.Monday]
			if len(got) != 1 {
				t.Fatalf("got %d exercises, want 1", len(got))
			}
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("exercise (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EmptyDayGetsDefaultExercise(t *testing.T) {
	req, err := Parse("block 12\nВторник:\nЧетверг:", FormulaBrzycki)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := req.ExercisesByDay[models.Tuesday]; len(got) != 1 || got[0].Name != models.DefaultExerciseName {
		t.Errorf("Tuesday = %+v, want default exercise", got)
	}
	if got := req.ExercisesByDay[models.Thursday]; len(got) != 1 || got[0].Name != "" {
		t.Errorf("Thursday = %+v, want one unnamed exercise", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"empty", "   ", "пустой текст"},
		{"no weeks", "linear", "первая строка"},
		{"bad weeks", "linear eight", "число недель"},
		{"unknown type", "zigzag 8", "неизвестный тип периодизации"},
		{"no colon", "linear 8\nПонедельник Жим 100", "строка 2"},
		{"unknown day", "linear 8\nFunday: Жим 100", "неизвестный день недели"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, FormulaBrzycki)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.text)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.text, err, tt.wantErr)
			}
		})
	}
}
