package model

import (
	"fmt"
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

const kindDayOfTheWeek = "day of the week"

// DayOfTheWeek is a day of the weekly cycle or the public holiday
// pseudo-day PH, which is not part of the cycle.
type DayOfTheWeek int

const (
	Mon DayOfTheWeek = iota + 1
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
	PH
)

var dayCodes = [...]string{
	Mon: "MON",
	Tue: "TUE",
	Wed: "WED",
	Thu: "THU",
	Fri: "FRI",
	Sat: "SAT",
	Sun: "SUN",
	PH:  "PH",
}

// WeekDays returns Mon..Sun.
func WeekDays() []DayOfTheWeek {
	return []DayOfTheWeek{Mon, Tue, Wed, Thu, Fri, Sat, Sun}
}

// AllDays returns Mon..Sun followed by PH.
func AllDays() []DayOfTheWeek {
	return append(WeekDays(), PH)
}

// ParseDayOfTheWeek parses one of Mon, Tue, Wed, Thu, Fri, Sat, Sun or PH,
// ignoring case.
func ParseDayOfTheWeek(text string) (DayOfTheWeek, error) {
	upper := strings.ToUpper(text)
	for _, d := range AllDays() {
		if dayCodes[d] == upper {
			return d, nil
		}
	}

	return 0, apierror.NewFormatError(kindDayOfTheWeek, text, apierror.ExampleDayOfTheWeek)
}

func MustParseDayOfTheWeek(text string) DayOfTheWeek {
	d, err := ParseDayOfTheWeek(text)
	if err != nil {
		panic(err)
	}

	return d
}

// IsValidDayOfTheWeek reports whether text is a known day.
// An empty text means absence and is valid.
func IsValidDayOfTheWeek(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseDayOfTheWeek(text)
	return err == nil
}

// DayRange returns the days from..to inclusive, walking forward.
// Wrapping around the end of the week is not supported.
func DayRange(from, to DayOfTheWeek) ([]DayOfTheWeek, error) {
	if from == PH || to == PH || !from.Before(to) {
		return nil, apierror.NewStateError("invalid day range: %s-%s", from, to)
	}

	days := make([]DayOfTheWeek, 0, int(to-from)+1)
	for d := from; d <= to; d++ {
		days = append(days, d)
	}

	return days, nil
}

// Next returns the following day, Sun wraps to Mon.
// PH has no successor.
func (d DayOfTheWeek) Next() (DayOfTheWeek, error) {
	switch d {
	case PH:
		return 0, apierror.NewStateError("%s: %s", apierror.ErrNoSuccessorDay, d)
	case Sun:
		return Mon, nil
	}

	return d + 1, nil
}

// Previous returns the preceding day, Mon wraps to Sun.
// PH has no predecessor.
func (d DayOfTheWeek) Previous() (DayOfTheWeek, error) {
	switch d {
	case PH:
		return 0, apierror.NewStateError("%s: %s", apierror.ErrNoPredecessorDay, d)
	case Mon:
		return Sun, nil
	}

	return d - 1, nil
}

func (d DayOfTheWeek) Before(other DayOfTheWeek) bool {
	return d < other
}

func (d DayOfTheWeek) After(other DayOfTheWeek) bool {
	return d > other
}

func (d DayOfTheWeek) IsValid() bool {
	return d >= Mon && d <= PH
}

func (d DayOfTheWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfTheWeek(%d)", int(d))
	}

	return dayCodes[d]
}

func (d DayOfTheWeek) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DayOfTheWeek) UnmarshalText(data []byte) error {
	parsed, err := ParseDayOfTheWeek(string(data))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
