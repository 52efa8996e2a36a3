package training

import (
	"math"
	"strconv"
	"strings"

	"ascend/internal/models"
)

// MaxIntensity потолок интенсивности, % от 1ПМ
const MaxIntensity = 95.0

// progressionStep прирост интенсивности за всю программу (10%)
const progressionStep = 0.1

// ProgressionFactor returns 1 + (week/totalWeeks)*0.1: exactly 1.0 in week 0 and
// just under 1.1 in the last week.
func ProgressionFactor(week, totalWeeks int) float64 {
	if totalWeeks <= 0 {
		return 1
	}
	return 1 + (float64(week)/float64(totalWeeks))*progressionStep
}

// EffectiveIntensity применяет фактор прогрессии и потолок 95%.
// Результат не округлён: округление только для отображения.
func EffectiveIntensity(base, factor float64) float64 {
	return math.Min(base*factor, MaxIntensity)
}

// ParseOneRepMax разбирает 1ПМ из строки формы. Пустая, нечисловая, отрицательная
// или бесконечная строка даёт NaN.
func ParseOneRepMax(s string) float64 {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// CalculateLoad рассчитывает рабочий вес: round(1ПМ * интенсивность / 100).
// NaN на входе даёт NaN на выходе, паники нет.
func CalculateLoad(oneRepMax, intensity float64) models.Load {
	return models.Load(math.Round(oneRepMax * intensity / 100))
}

// prescribe собирает назначение для одного упражнения
func prescribe(ex models.Exercise, intensity float64, phase models.Phase) models.PrescribedExercise {
	return models.PrescribedExercise{
		Exercise:         ex,
		IntensityPercent: int(math.Round(intensity)),
		WeightLoad:       CalculateLoad(ParseOneRepMax(ex.OneRepMax), intensity),
		Sets:             phase.Sets,
		Reps:             phase.Reps,
		PhaseName:        phase.Name,
	}
}
