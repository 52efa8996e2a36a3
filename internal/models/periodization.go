package models

import (
	"fmt"
	"strings"
)

// PeriodizationType тип периодизации
type PeriodizationType string

const (
	PeriodLinear PeriodizationType = "linear" // Линейная
	PeriodWave   PeriodizationType = "wave"   // Волновая
	PeriodBlock  PeriodizationType = "block"  // Блочная
)

// PeriodizationTypes все поддерживаемые типы в порядке меню
var PeriodizationTypes = []PeriodizationType{PeriodLinear, PeriodWave, PeriodBlock}

// ParsePeriodizationType разбирает тип периодизации. Неизвестное значение возвращается
// как есть вместе с ошибкой: решение об отказе принимает движок.
func ParsePeriodizationType(s string) (PeriodizationType, error) {
	t := PeriodizationType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case PeriodLinear, PeriodWave, PeriodBlock:
		return t, nil
	case "линейная":
		return PeriodLinear, nil
	case "волновая":
		return PeriodWave, nil
	case "блочная":
		return PeriodBlock, nil
	}
	return t, fmt.Errorf("неизвестный тип периодизации: %q", s)
}

// PhaseLabel returns the name of the column that shows the phase: "difficulty"
// for wave and "cycle" for linear and block.
func (t PeriodizationType) PhaseLabel() string {
	if t == PeriodWave {
		return "difficulty"
	}
	return "cycle"
}

// PhaseKey ключ фазы для локализации
type PhaseKey string

const (
	PhaseLight       PhaseKey = "light"
	PhaseMedium      PhaseKey = "medium"
	PhaseHeavy       PhaseKey = "heavy"
	PhaseDeload      PhaseKey = "deload"
	PhaseHypertrophy PhaseKey = "hypertrophy"
	PhaseStrength    PhaseKey = "strength"
	PhasePower       PhaseKey = "power"
	PhaseEndurance   PhaseKey = "endurance"
)

// Phase фаза цикла или блок: диапазон интенсивности и объём
type Phase struct {
	Key          PhaseKey
	Name         string
	MinIntensity float64 // % от 1ПМ
	MaxIntensity float64
	Sets         string
	Reps         string
}

// Midpoint returns the middle of the intensity range.
func (p Phase) Midpoint() float64 {
	return (p.MinIntensity + p.MaxIntensity) / 2
}
