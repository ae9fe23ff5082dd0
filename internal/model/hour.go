package model

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

var hourPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$|^24:00$`)

const kindHour = "hour"

// Hour is a minute-granular point in a day in military format,
// from "00:00" up to and including "24:00".
//
// "24:00" only ever terminates a range, it is never the start of one.
type Hour struct {
	minutes int
}

// Midnight and EndOfDay are the two boundaries of a day.
var (
	Midnight = Hour{minutes: 0}
	EndOfDay = Hour{minutes: MinutesPerDay}
)

func ParseHour(text string) (Hour, error) {
	if !hourPattern.MatchString(text) {
		return Hour{}, apierror.NewFormatError(kindHour, text, apierror.ExampleHour)
	}

	h, _ := strconv.Atoi(text[:2])
	m, _ := strconv.Atoi(text[3:])
	return Hour{minutes: h*60 + m}, nil
}

func MustParseHour(text string) Hour {
	h, err := ParseHour(text)
	if err != nil {
		panic(err)
	}

	return h
}

// IsValidHour reports whether text is a well-formed hour.
// An empty text means absence and is valid.
func IsValidHour(text string) bool {
	return text == "" || hourPattern.MatchString(text)
}

// HourOf returns the hour at the given minute of the day (0..1440).
func HourOf(minutes int) (Hour, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return Hour{}, apierror.NewFormatError(kindHour, strconv.Itoa(minutes), apierror.ExampleHour)
	}

	return hourAt(minutes), nil
}

func hourAt(minutes int) Hour {
	return Hour{minutes: minutes}
}

// Minutes returns the minute of the day, "24:00" being 1440.
func (h Hour) Minutes() int {
	return h.minutes
}

func (h Hour) Compare(other Hour) int {
	switch {
	case h.minutes < other.minutes:
		return -1
	case h.minutes > other.minutes:
		return 1
	}

	return 0
}

func (h Hour) String() string {
	return fmt.Sprintf("%02d:%02d", h.minutes/60, h.minutes%60)
}

func (h Hour) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hour) UnmarshalText(data []byte) error {
	parsed, err := ParseHour(string(data))
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}
