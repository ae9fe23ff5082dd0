package model

type WrappedScheduleUpdate struct {
	Update *ScheduleUpdate
	Err    error
}

// ScheduleUpdate is the latest known opening hours for a schedule key,
// for example a shop or a branch office.
type ScheduleUpdate struct {
	Key   string
	Hours *WeeklyOpeningHours

	// RowNumber is the row of the schedule file the update was read from.
	RowNumber int
}

func NewScheduleUpdate(key string, hours *WeeklyOpeningHours, rowNumber int) *ScheduleUpdate {
	return &ScheduleUpdate{
		Key:       key,
		Hours:     hours,
		RowNumber: rowNumber,
	}
}

func (u *ScheduleUpdate) String() string {
	return u.Key + " " + u.Hours.String()
}
