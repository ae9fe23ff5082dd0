package apierror

const (
	ErrScheduleKeyNotSpecified = "schedule key is not specified"
	ErrScheduleInvalidFormat   = "schedule must be in format: <key> <weekly-opening-hours>"
	ErrFailedToParseSchedule   = "failed to parse weekly opening hours"
)

const (
	ErrRangeMultipleDays  = "hour range represents multiple days"
	ErrRangesTwoDays      = "hour ranges represent two days"
	ErrDiffFromMultiDay   = "hour ranges must represent a single day, but was: from="
	ErrDiffToMultiDay     = "hour ranges must represent a single day, but was: to="
	ErrDiffDifferentDays  = "expected same day for diff"
	ErrNoSuccessorDay     = "day has no successor in the weekly cycle"
	ErrNoPredecessorDay   = "day has no predecessor in the weekly cycle"
	ErrHourRangesEmpty    = "hour ranges need at least one range"
	ErrDayOpeningHoursNil = "day opening hours must not be nil"
)

// Examples shown in format errors.
const (
	ExampleHour               = "00:00"
	ExampleHourRange          = "00:00-24:00"
	ExampleHourRanges         = "09:00-12:00+13:00-17:00"
	ExampleDayOfTheWeek       = "Mon"
	ExampleMultiDayOfTheWeek  = "Mon/Tue-Fri"
	ExampleDayOpeningHours    = "Mon 09:00-12:00+13:00-17:00"
	ExampleWeeklyOpeningHours = "Mon-Fri 09:00-17:00,Sat/Sun 09:00-12:00"
)
