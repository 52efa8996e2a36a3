package training

import (
	"fmt"
	"math"
	"strconv"
)

// Formula формула оценки 1ПМ по подходу
type Formula string

const (
	FormulaBrzycki Formula = "brzycki"
	FormulaEpley   Formula = "epley"
	FormulaAverage Formula = "average"
)

// ParseFormula разбирает название формулы
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(s); f {
	case FormulaBrzycki, FormulaEpley, FormulaAverage:
		return f, nil
	}
	return "", fmt.Errorf("неизвестная формула 1ПМ: %q", s)
}

// Estimate1PM оценивает 1ПМ по весу и числу повторений.
// weight: вес в кг, reps: выполненные повторения.
func Estimate1PM(weight float64, reps int, f Formula) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	switch f {
	case FormulaEpley:
		return epley(weight, reps)
	case FormulaAverage:
		return round2((brzycki(weight, reps) + epley(weight, reps)) / 2)
	default:
		return brzycki(weight, reps)
	}
}

// FormatOneRepMax форматирует оценку 1ПМ как строку формы ("112.5")
func FormatOneRepMax(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// brzycki: 1ПМ = вес * 36 / (37 - повторы), точнее всего до 10 повторов
func brzycki(weight float64, reps int) float64 {
	if reps >= 37 {
		return weight
	}
	return round2(weight * 36.0 / float64(37-reps))
}

// epley: 1ПМ = вес * (1 + 0.0333 * повторы)
func epley(weight float64, reps int) float64 {
	return round2(weight * (1 + 0.0333*float64(reps)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormulaName название формулы для пользователя
func FormulaName(f Formula) string {
	switch f {
	case FormulaBrzycki:
		return "Формула Бжицки"
	case FormulaEpley:
		return "Формула Эпли"
	case FormulaAverage:
		return "Среднее (Бжицки + Эпли)"
	default:
		return string(f)
	}
}
