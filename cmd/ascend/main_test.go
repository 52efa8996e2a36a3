package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"ascend/internal/models"
)

const request = `
periodization: block
weeks: 8
days:
  - day: monday
    exercises:
      - name: Жим лёжа
        one_rep_max: 100
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	full := append([]string{"ascend", "--env-file", envFile, "--log-level", "error"}, args...)
	err := app.RunContext(context.Background(), full)
	return out.String(), err
}

func writeRequest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.yaml")
	if err := os.WriteFile(path, []byte(request), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate_TextFromStdin(t *testing.T) {
	out, err := run(t, "linear 4\nПонедельник: Жим лёжа 100\n", "generate")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	for _, want := range []string{"Программа: Линейная периодизация, 4 нед.", "Интенсивность: 65% | Вес (кг): 65"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerate_JSONWithOverrides(t *testing.T) {
	out, err := run(t, "", "--lang", "en", "generate", "-i", writeRequest(t), "--type", "wave", "--weeks", "4", "-f", "json")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	var program models.Program
	if err := json.Unmarshal([]byte(out), &program); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, out)
	}
	if program.Type != models.PeriodWave || program.TotalWeeks != 4 || len(program.Weeks) != 4 {
		t.Errorf("program = %s/%d with %d weeks", program.Type, program.TotalWeeks, len(program.Weeks))
	}
}

func TestGenerate_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.xlsx")
	out, err := run(t, "", "generate", "-i", writeRequest(t), "-f", "xlsx", "-o", path)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("printed path = %q, want %q", out, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()
	if got := len(f.GetSheetList()); got != 9 {
		t.Errorf("sheets = %d, want summary plus 8 weeks", got)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"generate", "--type", "zigzag"}},
		{"zero weeks", []string{"generate", "--weeks", "0"}},
		{"unknown format", []string{"generate", "-f", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-i", writeRequest(t))
			if _, err := run(t, "", args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCompare(t *testing.T) {
	out, err := run(t, "", "compare", "-i", writeRequest(t))
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	linear, wave, block := strings.Index(out, "Линейная"), strings.Index(out, "Волновая"), strings.Index(out, "Блочная")
	if linear < 0 || wave < linear || block < wave {
		t.Errorf("compare output order wrong:\n%s", out)
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single formula", []string{"estimate", "--weight", "100", "--reps", "5", "--formula", "brzycki"}, "Формула Бжицки: 112.5 кг\n"},
		{"single rep", []string{"estimate", "--weight", "140", "--reps", "1", "--formula", "epley"}, "Формула Эпли: 140 кг\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("estimate error = %v", err)
			}
			if out != tt.want {
				t.Errorf("estimate output = %q, want %q", out, tt.want)
			}
		})
	}

	out, err := run(t, "", "estimate", "--weight", "100", "--reps", "5")
	if err != nil {
		t.Fatalf("estimate error = %v", err)
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("estimate without formula printed %d lines, want 3", got)
	}

	if _, err := run(t, "", "estimate", "--weight", "-1", "--reps", "5"); err == nil {
		t.Error("estimate expected error for negative weight")
	}
}

func TestBot_RequiresToken(t *testing.T) {
	t.Setenv("ASCEND_BOT_TOKEN", "")
	if _, err := run(t, "", "bot"); err == nil || !strings.Contains(err.Error(), "ASCEND_BOT_TOKEN") {
		t.Errorf("bot error = %v, want missing token", err)
	}
}

func TestEnvFile(t *testing.T) {
	t.Setenv("ASCEND_LANG", "")

	t.Run("missing explicit file", func(t *testing.T) {
		app := newApp()
		app.Writer, app.ErrWriter = &bytes.Buffer{}, &bytes.Buffer{}
		missing := filepath.Join(t.TempDir(), "missing.env")
		err := app.RunContext(context.Background(), []string{"ascend", "--env-file", missing, "estimate", "--weight", "100", "--reps", "1"})
		if err == nil || !strings.Contains(err.Error(), "--env-file") {
			t.Errorf("error = %v, want missing --env-file", err)
		}
	})

	t.Run("settings from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "en.env")
		if err := os.WriteFile(path, []byte("ASCEND_LANG=en\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		app := newApp()
		app.Reader = strings.NewReader("linear 4\nMonday: Bench 100\n")
		app.Writer, app.ErrWriter = &out, &bytes.Buffer{}
		if err := app.RunContext(context.Background(), []string{"ascend", "--env-file", path, "--log-level", "error", "generate"}); err != nil {
			t.Fatalf("generate error = %v", err)
		}
		if !strings.Contains(out.String(), "Linear") {
			t.Errorf("output is not in English:\n%s", out.String())
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.env")
		if err := os.WriteFile(path, []byte("ASCEND_LANG=\"en\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		app := newApp()
		app.Writer, app.ErrWriter = &bytes.Buffer{}, &bytes.Buffer{}
		if err := app.RunContext(context.Background(), []string{"ascend", "--env-file", path, "estimate", "--weight", "100", "--reps", "1"}); err == nil {
			t.Error("expected error for a broken env file")
		}
	})
}
