// Package input reads program requests from YAML or JSON files.
//
//	periodization: wave
//	weeks: 8
//	days:
//	  - day: monday
//	    exercises:
//	      - name: Жим лёжа
//	        one_rep_max: 100
//	      - name: Присед
//	        weight: 100
//	        reps: 5
//	  - day: friday
//	    selected: false
//	    exercises:
//	      - name: Тяга
//	        one_rep_max: 160
//
// The order of the days list is the order the days were selected in.
package input

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ascend/internal/models"
	"ascend/internal/training"
)

type document struct {
	Periodization string   `yaml:"periodization"`
	Weeks         int      `yaml:"weeks"`
	Days          []dayDoc `yaml:"days"`
}

type dayDoc struct {
	Day       models.Weekday `yaml:"day"`
	Selected  *bool          `yaml:"selected"`
	Exercises []exerciseDoc  `yaml:"exercises"`
}

type exerciseDoc struct {
	Name      string  `yaml:"name"`
	OneRepMax string  `yaml:"one_rep_max"`
	Weight    float64 `yaml:"weight"`
	Reps      int     `yaml:"reps"`
}

// Load читает запрос из файла
func Load(path string, f training.Formula) (*models.ProgramRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение файла программы: %w", err)
	}
	req, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// Decode разбирает запрос из YAML или JSON. Тип периодизации не проверяется:
// неизвестный тип отклонит генератор.
func Decode(data []byte, f training.Formula) (*models.ProgramRequest, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("разбор файла программы: %w", err)
	}

	t, _ := models.ParsePeriodizationType(doc.Periodization)
	req := &models.ProgramRequest{
		Type:           t,
		Weeks:          doc.Weeks,
		ExercisesByDay: models.NewExercisesByDay(),
	}

	for i, d := range doc.Days {
		if !d.Day.Valid() {
			return nil, fmt.Errorf("days[%d]: не указан день недели", i)
		}
		for j, e := range d.Exercises {
			ex, err := e.exercise(f)
			if err != nil {
				return nil, fmt.Errorf("days[%d].exercises[%d]: %w", i, j, err)
			}
			req.ExercisesByDay[d.Day] = append(req.ExercisesByDay[d.Day], ex)
		}
		if d.Selected == nil || *d.Selected {
			req.SelectedDays = append(req.SelectedDays, d.Day)
		}
	}

	req.Normalize()
	return req, nil
}

// exercise превращает запись файла в упражнение; вес и повторы без 1ПМ
// пересчитываются в оценку 1ПМ
func (e exerciseDoc) exercise(f training.Formula) (models.Exercise, error) {
	ex := models.Exercise{Name: e.Name, OneRepMax: e.OneRepMax}
	if e.OneRepMax != "" {
		if e.Weight != 0 || e.Reps != 0 {
			return ex, fmt.Errorf("укажите либо one_rep_max, либо weight и reps")
		}
		return ex, nil
	}
	if e.Weight != 0 || e.Reps != 0 {
		if e.Weight <= 0 || e.Reps <= 0 {
			return ex, fmt.Errorf("weight и reps должны быть положительными")
		}
		ex.OneRepMax = training.FormatOneRepMax(training.Estimate1PM(e.Weight, e.Reps, f))
	}
	return ex, nil
}
