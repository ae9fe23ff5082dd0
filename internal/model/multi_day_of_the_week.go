package model

import (
	"slices"
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

const kindMultiDayOfTheWeek = "multiple days of the week"

// dayEntry is either a single day (from == to) or an inclusive range.
type dayEntry struct {
	from DayOfTheWeek
	to   DayOfTheWeek
}

func (e dayEntry) String() string {
	if e.from == e.to {
		return e.from.String()
	}

	return e.from.String() + "-" + e.to.String()
}

// MultiDayOfTheWeek is a set of days written as "Mon/Tue/Wed-Fri":
// "/" separates entries, "-" denotes an inclusive range.
type MultiDayOfTheWeek struct {
	entries []dayEntry

	// days is the expanded set in ordinal order.
	days []DayOfTheWeek
}

func ParseMultiDayOfTheWeek(text string) (*MultiDayOfTheWeek, error) {
	invalid := apierror.NewFormatError(kindMultiDayOfTheWeek, text, apierror.ExampleMultiDayOfTheWeek)
	if text == "" {
		return nil, invalid
	}

	var (
		entries []dayEntry
		days    []DayOfTheWeek
	)

	for _, token := range strings.Split(text, "/") {
		entry, isRange, err := parseDayEntry(token)
		if err != nil {
			return nil, invalid
		}

		expanded := []DayOfTheWeek{entry.from}
		if isRange {
			if expanded, err = DayRange(entry.from, entry.to); err != nil {
				return nil, invalid
			}
		}

		for _, d := range expanded {
			if slices.Contains(days, d) {
				return nil, &apierror.DuplicateError{Day: d.String()}
			}

			days = append(days, d)
		}

		entries = append(entries, entry)
	}

	slices.Sort(days)
	return &MultiDayOfTheWeek{entries: entries, days: days}, nil
}

// parseDayEntry also reports whether the token was written as a range.
func parseDayEntry(token string) (dayEntry, bool, error) {
	fromText, toText, isRange := strings.Cut(token, "-")

	from, err := ParseDayOfTheWeek(fromText)
	if err != nil {
		return dayEntry{}, false, err
	}

	if !isRange {
		return dayEntry{from: from, to: from}, false, nil
	}

	to, err := ParseDayOfTheWeek(toText)
	if err != nil {
		return dayEntry{}, false, err
	}

	return dayEntry{from: from, to: to}, true, nil
}

func MustParseMultiDayOfTheWeek(text string) *MultiDayOfTheWeek {
	m, err := ParseMultiDayOfTheWeek(text)
	if err != nil {
		panic(err)
	}

	return m
}

// IsValidMultiDayOfTheWeek reports whether text is well-formed.
// An empty text means absence and is valid.
func IsValidMultiDayOfTheWeek(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseMultiDayOfTheWeek(text)
	return err == nil
}

// NewMultiDayOfTheWeek builds the compressed form of the given days.
func NewMultiDayOfTheWeek(days ...DayOfTheWeek) (*MultiDayOfTheWeek, error) {
	if len(days) == 0 {
		return nil, apierror.NewFormatError(kindMultiDayOfTheWeek, "", apierror.ExampleMultiDayOfTheWeek)
	}

	sorted := slices.Clone(days)
	slices.Sort(sorted)
	for i, d := range sorted {
		if !d.IsValid() {
			return nil, apierror.NewFormatError(kindMultiDayOfTheWeek, d.String(), apierror.ExampleMultiDayOfTheWeek)
		}

		if i > 0 && sorted[i-1] == d {
			return nil, &apierror.DuplicateError{Day: d.String()}
		}
	}

	return &MultiDayOfTheWeek{entries: compressDays(sorted), days: sorted}, nil
}

// compressDays turns runs of three or more consecutive days into a range.
// PH never joins a run.
func compressDays(sorted []DayOfTheWeek) []dayEntry {
	var entries []dayEntry

	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 && sorted[j+1] != PH {
			j++
		}

		if j-i >= 2 {
			entries = append(entries, dayEntry{from: sorted[i], to: sorted[j]})
		} else {
			for k := i; k <= j; k++ {
				entries = append(entries, dayEntry{from: sorted[k], to: sorted[k]})
			}
		}

		i = j + 1
	}

	return entries
}

// Days returns the expanded days in ordinal order.
func (m *MultiDayOfTheWeek) Days() []DayOfTheWeek {
	return slices.Clone(m.days)
}

func (m *MultiDayOfTheWeek) Contains(day DayOfTheWeek) bool {
	return slices.Contains(m.days, day)
}

// Compress returns the shortest form of the same days, e.g.
// "Mon/Tue/Wed-Fri" becomes "MON-FRI".
func (m *MultiDayOfTheWeek) Compress() *MultiDayOfTheWeek {
	return &MultiDayOfTheWeek{entries: compressDays(m.days), days: slices.Clone(m.days)}
}

func (m *MultiDayOfTheWeek) String() string {
	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		parts = append(parts, e.String())
	}

	return strings.Join(parts, "/")
}

func (m *MultiDayOfTheWeek) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MultiDayOfTheWeek) UnmarshalText(data []byte) error {
	parsed, err := ParseMultiDayOfTheWeek(string(data))
	if err != nil {
		return err
	}

	*m = *parsed
	return nil
}
