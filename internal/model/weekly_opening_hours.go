package model

import (
	"slices"
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
	"github.com/fuinorg/objects4j-sub000/internal/storage"
)

const kindWeeklyOpeningHours = "weekly opening hours"

// WeeklyOpeningHours are the opening hours of a week, e.g.
// "Mon-Fri 09:00-17:00,Sat/Sun 09:00-12:00". Every day appears at most
// once and days are kept in ordinal order. Days without an entry are closed.
type WeeklyOpeningHours struct {
	days []*DayOpeningHours
}

func NewWeeklyOpeningHours(days ...*DayOpeningHours) (*WeeklyOpeningHours, error) {
	sorted := make([]*DayOpeningHours, 0, len(days))
	for _, d := range days {
		if d == nil {
			return nil, apierror.NewStateError(apierror.ErrDayOpeningHoursNil)
		}

		if slices.ContainsFunc(sorted, d.Equal) {
			return nil, &apierror.DuplicateError{Day: d.day.String()}
		}

		sorted = append(sorted, d)
	}

	slices.SortFunc(sorted, (*DayOpeningHours).Compare)
	return &WeeklyOpeningHours{days: sorted}, nil
}

// ParseWeeklyOpeningHours parses comma separated segments of
// "<days> <hour ranges>".
func ParseWeeklyOpeningHours(text string) (*WeeklyOpeningHours, error) {
	invalid := apierror.NewFormatError(kindWeeklyOpeningHours, text, apierror.ExampleWeeklyOpeningHours)

	segments := strings.FieldsFunc(text, func(r rune) bool { return r == ',' })
	if len(segments) == 0 {
		return nil, invalid
	}

	var days []*DayOpeningHours
	for _, segment := range segments {
		daysText, hoursText, ok := strings.Cut(segment, " ")
		if !ok {
			return nil, invalid
		}

		multiDay, err := ParseMultiDayOfTheWeek(daysText)
		if err != nil {
			return nil, invalid
		}

		hours, err := ParseHourRanges(hoursText)
		if err != nil {
			return nil, invalid
		}

		for _, day := range multiDay.Days() {
			days = append(days, &DayOpeningHours{day: day, hours: hours})
		}
	}

	return NewWeeklyOpeningHours(days...)
}

func MustParseWeeklyOpeningHours(text string) *WeeklyOpeningHours {
	w, err := ParseWeeklyOpeningHours(text)
	if err != nil {
		panic(err)
	}

	return w
}

// IsValidWeeklyOpeningHours reports whether text is well-formed and
// defines every day at most once. An empty text means absence and is valid.
func IsValidWeeklyOpeningHours(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseWeeklyOpeningHours(text)
	return err == nil
}

// Days returns the opening hours of each defined day in ordinal order.
func (w *WeeklyOpeningHours) Days() []*DayOpeningHours {
	return slices.Clone(w.days)
}

// Get returns the opening hours of the day, or nil if it is closed.
func (w *WeeklyOpeningHours) Get(day DayOfTheWeek) *DayOpeningHours {
	for _, d := range w.days {
		if d.day == day {
			return d
		}
	}

	return nil
}

func (w *WeeklyOpeningHours) IsNormalized() bool {
	for _, d := range w.days {
		if !d.IsNormalized() {
			return false
		}
	}

	return true
}

// Normalize moves every part of a day that wraps past midnight to the
// following day and merges it with the hours already defined there.
// Sunday wraps to Monday. A wrapping PH fails, it has no following day.
func (w *WeeklyOpeningHours) Normalize() (*WeeklyOpeningHours, error) {
	if w.IsNormalized() {
		return w, nil
	}

	byDay := storage.NewInMemoryStorage[DayOfTheWeek, *HourRanges]()
	for _, d := range w.days {
		buckets, err := d.Normalize()
		if err != nil {
			return nil, err
		}

		for _, b := range buckets {
			existing, ok := byDay.Get(b.day)
			if !ok {
				byDay.Set(b.day, b.hours)
				continue
			}

			merged, err := existing.Add(b.hours)
			if err != nil {
				return nil, err
			}

			byDay.Set(b.day, merged)
		}
	}

	days := make([]*DayOpeningHours, 0, byDay.Len())
	for _, pair := range byDay.GetAll() {
		days = append(days, &DayOpeningHours{day: pair.Key, hours: pair.Value})
	}

	return NewWeeklyOpeningHours(days...)
}

// Diff returns the changes that turn w into other, day by day in
// ordinal order. Both sides are normalized first. A day defined on one
// side only is added or removed as a whole.
func (w *WeeklyOpeningHours) Diff(other *WeeklyOpeningHours) ([]DayOpeningHoursChange, error) {
	from, err := w.Normalize()
	if err != nil {
		return nil, err
	}

	to, err := other.Normalize()
	if err != nil {
		return nil, err
	}

	var changes []DayOpeningHoursChange
	for _, day := range AllDays() {
		f, t := from.Get(day), to.Get(day)
		switch {
		case f == nil && t == nil:
			continue
		case f == nil:
			changes = append(changes, t.AsAddedChanges()...)
		case t == nil:
			changes = append(changes, f.AsRemovedChanges()...)
		default:
			dayDiff, err := f.Diff(t)
			if err != nil {
				return nil, err
			}

			changes = append(changes, dayDiff...)
		}
	}

	return changes, nil
}

// OpenAt reports whether the whole range r is open on the given day.
// A range wrapping past midnight continues on the following day.
func (w *WeeklyOpeningHours) OpenAt(day DayOfTheWeek, r HourRange) (bool, error) {
	normalized, err := w.Normalize()
	if err != nil {
		return false, err
	}

	parts := r.Normalize()
	for i, part := range parts {
		if i > 0 {
			if day, err = day.Next(); err != nil {
				return false, err
			}
		}

		d := normalized.Get(day)
		if d == nil {
			return false, nil
		}

		open, err := d.OpenAt(part)
		if err != nil || !open {
			return false, err
		}
	}

	return true, nil
}

func (w *WeeklyOpeningHours) AsAddedChanges() []DayOpeningHoursChange {
	var changes []DayOpeningHoursChange
	for _, d := range w.days {
		changes = append(changes, d.AsAddedChanges()...)
	}

	return changes
}

func (w *WeeklyOpeningHours) AsRemovedChanges() []DayOpeningHoursChange {
	var changes []DayOpeningHoursChange
	for _, d := range w.days {
		changes = append(changes, d.AsRemovedChanges()...)
	}

	return changes
}

// Compress groups the days sharing the same hours, in order of their
// first day, e.g. "MON-FRI 09:00-17:00,SAT/SUN 09:00-12:00".
func (w *WeeklyOpeningHours) Compress() string {
	var (
		order  []string
		groups = make(map[string][]DayOfTheWeek)
	)

	for _, d := range w.days {
		key := d.hours.String()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}

		groups[key] = append(groups[key], d.day)
	}

	segments := make([]string, 0, len(order))
	for _, hours := range order {
		days, _ := NewMultiDayOfTheWeek(groups[hours]...)
		segments = append(segments, days.String()+" "+hours)
	}

	return strings.Join(segments, ",")
}

// Equal reports whether both weeks define the same hours for the same days.
func (w *WeeklyOpeningHours) Equal(other *WeeklyOpeningHours) bool {
	return slices.EqualFunc(w.days, other.days, (*DayOpeningHours).HoursEqual)
}

func (w *WeeklyOpeningHours) String() string {
	return w.Compress()
}

func (w *WeeklyOpeningHours) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WeeklyOpeningHours) UnmarshalText(data []byte) error {
	parsed, err := ParseWeeklyOpeningHours(string(data))
	if err != nil {
		return err
	}

	*w = *parsed
	return nil
}
