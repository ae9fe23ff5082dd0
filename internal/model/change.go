package model

import "fmt"

type ChangeType int

const (
	Added   ChangeType = 1
	Removed ChangeType = 2
)

func (t ChangeType) String() string {
	switch t {
	case Added:
		return "ADDED"
	case Removed:
		return "REMOVED"
	}

	return fmt.Sprintf("ChangeType(%d)", int(t))
}

// HourRangeChange is a range that was added to or removed from hour ranges.
type HourRangeChange struct {
	Type  ChangeType
	Range HourRange
}

func (c HourRangeChange) String() string {
	return fmt.Sprintf("%s %s", c.Type, c.Range)
}

// DayOpeningHoursChange is a range that was added to or removed from a day.
type DayOpeningHoursChange struct {
	Type  ChangeType
	Day   DayOfTheWeek
	Range HourRange
}

func (c DayOpeningHoursChange) String() string {
	return fmt.Sprintf("%s %s %s", c.Type, c.Day, c.Range)
}
