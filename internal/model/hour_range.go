package model

import (
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

const kindHourRange = "hour range"

// HourRange is an interval between two hours, e.g. "09:00-17:00".
//
// A range whose start is after its end wraps past midnight into the
// next day, e.g. "18:00-03:00". The end of a day is written "24:00",
// so a range never ends at "00:00" and never starts at "24:00".
type HourRange struct {
	from Hour
	to   Hour
}

func NewHourRange(from, to Hour) (HourRange, error) {
	if !validBounds(from, to) {
		return HourRange{}, apierror.NewFormatError(
			kindHourRange, from.String()+"-"+to.String(), apierror.ExampleHourRange,
		)
	}

	return HourRange{from: from, to: to}, nil
}

// ParseHourRange parses "HH:MM-HH:MM". The dash must be at offset 5.
func ParseHourRange(text string) (HourRange, error) {
	invalid := apierror.NewFormatError(kindHourRange, text, apierror.ExampleHourRange)
	if strings.IndexByte(text, '-') != 5 {
		return HourRange{}, invalid
	}

	from, err := ParseHour(text[:5])
	if err != nil {
		return HourRange{}, invalid
	}

	to, err := ParseHour(text[6:])
	if err != nil {
		return HourRange{}, invalid
	}

	if !validBounds(from, to) {
		return HourRange{}, invalid
	}

	return HourRange{from: from, to: to}, nil
}

func MustParseHourRange(text string) HourRange {
	r, err := ParseHourRange(text)
	if err != nil {
		panic(err)
	}

	return r
}

// IsValidHourRange reports whether text is a well-formed hour range.
// An empty text means absence and is valid.
func IsValidHourRange(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseHourRange(text)
	return err == nil
}

func validBounds(from, to Hour) bool {
	return from != to && from != EndOfDay && to != Midnight
}

func (r HourRange) From() Hour {
	return r.from
}

func (r HourRange) To() Hour {
	return r.to
}

// IsNormalized reports whether the range stays within a single day.
func (r HourRange) IsNormalized() bool {
	return r.from.minutes < r.to.minutes
}

// Normalize returns the range itself if it stays within one day.
// Otherwise it returns two ranges: the part until "24:00" and the
// part from "00:00" of the following day.
func (r HourRange) Normalize() []HourRange {
	if r.IsNormalized() {
		return []HourRange{r}
	}

	return []HourRange{
		{from: r.from, to: EndOfDay},
		{from: Midnight, to: r.to},
	}
}

// Overlaps reports whether both ranges share at least one minute.
// Only meaningful for normalized ranges.
func (r HourRange) Overlaps(other HourRange) bool {
	return r.from.minutes < other.to.minutes && other.from.minutes < r.to.minutes
}

// Duration returns the length of the range in minutes.
func (r HourRange) Duration() int {
	if r.IsNormalized() {
		return r.to.minutes - r.from.minutes
	}

	return MinutesPerDay - r.from.minutes + r.to.minutes
}

// ToMinutes returns the minutes [from, to) of a normalized range.
func (r HourRange) ToMinutes() (Minutes, error) {
	if !r.IsNormalized() {
		return Minutes{}, apierror.NewStateError("%s: %s", apierror.ErrRangeMultipleDays, r)
	}

	return minutesBetween(r.from.minutes, r.to.minutes), nil
}

func (r HourRange) String() string {
	return r.from.String() + "-" + r.to.String()
}

func (r HourRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *HourRange) UnmarshalText(data []byte) error {
	parsed, err := ParseHourRange(string(data))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}
