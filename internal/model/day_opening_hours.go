package model

import (
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

const kindDayOpeningHours = "day opening hours"

// DayOpeningHours are the opening hours of one day, e.g. "MON 09:00-12:00+13:00-17:00".
//
// NOTE: Equal and Compare look at the day ONLY and ignore the hours.
// Two values for the same day with different hours are equal. Use
// HoursEqual to compare the hours as well.
type DayOpeningHours struct {
	day   DayOfTheWeek
	hours *HourRanges
}

func NewDayOpeningHours(day DayOfTheWeek, hours *HourRanges) (*DayOpeningHours, error) {
	if !day.IsValid() {
		return nil, apierror.NewFormatError(kindDayOfTheWeek, day.String(), apierror.ExampleDayOfTheWeek)
	}

	if hours == nil || hours.Len() == 0 {
		return nil, apierror.NewStateError(apierror.ErrHourRangesEmpty)
	}

	return &DayOpeningHours{day: day, hours: hours}, nil
}

// ParseDayOpeningHours parses "<day> <hour ranges>", split on the first space.
func ParseDayOpeningHours(text string) (*DayOpeningHours, error) {
	invalid := apierror.NewFormatError(kindDayOpeningHours, text, apierror.ExampleDayOpeningHours)

	dayText, hoursText, ok := strings.Cut(text, " ")
	if !ok {
		return nil, invalid
	}

	day, err := ParseDayOfTheWeek(dayText)
	if err != nil {
		return nil, invalid
	}

	hours, err := ParseHourRanges(hoursText)
	if err != nil {
		return nil, invalid
	}

	return &DayOpeningHours{day: day, hours: hours}, nil
}

func MustParseDayOpeningHours(text string) *DayOpeningHours {
	d, err := ParseDayOpeningHours(text)
	if err != nil {
		panic(err)
	}

	return d
}

// IsValidDayOpeningHours reports whether text is well-formed.
// An empty text means absence and is valid.
func IsValidDayOpeningHours(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseDayOpeningHours(text)
	return err == nil
}

func (d *DayOpeningHours) Day() DayOfTheWeek {
	return d.day
}

func (d *DayOpeningHours) Hours() *HourRanges {
	return d.hours
}

func (d *DayOpeningHours) IsNormalized() bool {
	return d.hours.IsNormalized()
}

// Normalize returns the day itself if no range wraps past midnight.
// Otherwise the overflow is returned as a second entry for the next day,
// e.g. "FRI 18:00-03:00" becomes "FRI 18:00-24:00" and "SAT 00:00-03:00".
func (d *DayOpeningHours) Normalize() ([]*DayOpeningHours, error) {
	buckets := d.hours.Normalize()
	if len(buckets) == 1 {
		return []*DayOpeningHours{d}, nil
	}

	next, err := d.day.Next()
	if err != nil {
		return nil, err
	}

	return []*DayOpeningHours{
		{day: d.day, hours: buckets[0]},
		{day: next, hours: buckets[1]},
	}, nil
}

// Diff returns the changes that turn d into other. Both must be for
// the same day.
//
// The normalized buckets of both sides are paired by position: the
// first with the first, the second with the second. A second bucket
// on one side only is added or removed as a whole. Both second buckets
// are assumed to belong to the same following day.
func (d *DayOpeningHours) Diff(other *DayOpeningHours) ([]DayOpeningHoursChange, error) {
	if d.day != other.day {
		return nil, apierror.NewStateError(
			"%s, but was: this=%s, other=%s", apierror.ErrDiffDifferentDays, d.day, other.day,
		)
	}

	from, err := d.Normalize()
	if err != nil {
		return nil, err
	}

	to, err := other.Normalize()
	if err != nil {
		return nil, err
	}

	changes, err := diffBuckets(from[0], to[0])
	if err != nil {
		return nil, err
	}

	switch {
	case len(from) == 1 && len(to) == 2:
		changes = append(changes, to[1].AsAddedChanges()...)
	case len(from) == 2 && len(to) == 1:
		changes = append(changes, from[1].AsRemovedChanges()...)
	case len(from) == 2 && len(to) == 2:
		next, err := diffBuckets(from[1], to[1])
		if err != nil {
			return nil, err
		}

		changes = append(changes, next...)
	}

	return changes, nil
}

func diffBuckets(from, to *DayOpeningHours) ([]DayOpeningHoursChange, error) {
	hourChanges, err := from.hours.Diff(to.hours)
	if err != nil {
		return nil, err
	}

	return dayChanges(from.day, hourChanges), nil
}

func dayChanges(day DayOfTheWeek, hourChanges []HourRangeChange) []DayOpeningHoursChange {
	changes := make([]DayOpeningHoursChange, 0, len(hourChanges))
	for _, c := range hourChanges {
		changes = append(changes, DayOpeningHoursChange{Type: c.Type, Day: day, Range: c.Range})
	}

	return changes
}

// Overlaps compares the hours only, the day is ignored.
func (d *DayOpeningHours) Overlaps(other *DayOpeningHours) bool {
	return d.hours.Overlaps(other.hours)
}

// Add returns the day with the given hours added.
// Both sides must be normalized.
func (d *DayOpeningHours) Add(hours *HourRanges) (*DayOpeningHours, error) {
	sum, err := d.hours.Add(hours)
	if err != nil {
		return nil, err
	}

	return d.withHours(sum), nil
}

// AddDay adds the hours of other, its day is not checked.
func (d *DayOpeningHours) AddDay(other *DayOpeningHours) (*DayOpeningHours, error) {
	return d.Add(other.hours)
}

// Remove returns the day without the given hours, or nil if no hours
// are left. Both sides must be normalized.
func (d *DayOpeningHours) Remove(hours *HourRanges) (*DayOpeningHours, error) {
	rest, err := d.hours.Remove(hours)
	if err != nil {
		return nil, err
	}

	return d.withHours(rest), nil
}

// RemoveDay removes the hours of other, its day is not checked.
func (d *DayOpeningHours) RemoveDay(other *DayOpeningHours) (*DayOpeningHours, error) {
	return d.Remove(other.hours)
}

func (d *DayOpeningHours) withHours(hours *HourRanges) *DayOpeningHours {
	if hours == nil {
		return nil
	}

	return &DayOpeningHours{day: d.day, hours: hours}
}

func (d *DayOpeningHours) AsRemovedChanges() []DayOpeningHoursChange {
	return dayChanges(d.day, d.hours.AsChanges(Removed))
}

func (d *DayOpeningHours) AsAddedChanges() []DayOpeningHoursChange {
	return dayChanges(d.day, d.hours.AsChanges(Added))
}

// OpenAt reports whether the whole range r lies within the opening hours.
func (d *DayOpeningHours) OpenAt(r HourRange) (bool, error) {
	return d.hours.OpenAt(r)
}

// OpenAtDay reports whether d is open at every range of other.
// It is false for different days.
func (d *DayOpeningHours) OpenAtDay(other *DayOpeningHours) (bool, error) {
	if d.day != other.day {
		return false, nil
	}

	for r := range other.hours.All() {
		open, err := d.hours.OpenAt(r)
		if err != nil || !open {
			return false, err
		}
	}

	return true, nil
}

// Equal compares the day only, see the type documentation.
func (d *DayOpeningHours) Equal(other *DayOpeningHours) bool {
	return d.day == other.day
}

// Compare orders by day only, see the type documentation.
func (d *DayOpeningHours) Compare(other *DayOpeningHours) int {
	return int(d.day) - int(other.day)
}

// HoursEqual compares both the day and the hours.
func (d *DayOpeningHours) HoursEqual(other *DayOpeningHours) bool {
	return d.day == other.day && d.hours.Equal(other.hours)
}

func (d *DayOpeningHours) String() string {
	return d.day.String() + " " + d.hours.String()
}

func (d *DayOpeningHours) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DayOpeningHours) UnmarshalText(data []byte) error {
	parsed, err := ParseDayOpeningHours(string(data))
	if err != nil {
		return err
	}

	*d = *parsed
	return nil
}
