package model

import "fmt"

// ScheduleChange is a single change of the opening hours of a schedule key.
type ScheduleChange struct {
	Key    string
	Change DayOpeningHoursChange
}

func NewScheduleChanges(key string, changes []DayOpeningHoursChange) []ScheduleChange {
	out := make([]ScheduleChange, 0, len(changes))
	for _, c := range changes {
		out = append(out, ScheduleChange{Key: key, Change: c})
	}

	return out
}

func (c ScheduleChange) String() string {
	return fmt.Sprintf("%s %s", c.Key, c.Change)
}
