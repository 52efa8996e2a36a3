package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekday день недели, 1-7 (1=Пн)
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays канонический порядок дней
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayKeys = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdayAliases = map[string]Weekday{
	"mon": Monday, "tue": Tuesday, "wed": Wednesday, "thu": Thursday,
	"fri": Friday, "sat": Saturday, "sun": Sunday,
	"понедельник": Monday, "вторник": Tuesday, "среда": Wednesday, "четверг": Thursday,
	"пятница": Friday, "суббота": Saturday, "воскресенье": Sunday,
	"пн": Monday, "вт": Tuesday, "ср": Wednesday, "чт": Thursday,
	"пт": Friday, "сб": Saturday, "вс": Sunday,
}

// Valid reports whether d is one of Monday..Sunday.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Key returns the lowercase English name used in files and locale keys.
func (d Weekday) Key() string {
	if !d.Valid() {
		return ""
	}
	return weekdayKeys[d]
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	k := weekdayKeys[d]
	return strings.ToUpper(k[:1]) + k[1:]
}

// ParseWeekday разбирает название дня (англ./рус., полное или краткое)
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range weekdayKeys {
		if k != "" && k == s {
			return Weekday(i), nil
		}
	}
	if d, ok := weekdayAliases[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("неизвестный день недели: %q", s)
}

// MarshalJSON кодирует день его ключом ("monday")
func (d Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}

// UnmarshalText принимает "monday" или "Понедельник" в JSON и YAML
func (d *Weekday) UnmarshalText(text []byte) error {
	day, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = day
	return nil
}
