package model

import "fmt"

// ChangeStats sums up the changes of a schedule key.
type ChangeStats struct {

	// Updates is the number of processed updates.
	Updates int

	// Changes is the number of reported changes.
	Changes int

	// AddedMinutes and RemovedMinutes are the total opening time
	// gained and lost, over all days.
	AddedMinutes   int
	RemovedMinutes int
}

func (s *ChangeStats) Record(changes []DayOpeningHoursChange) {
	s.Updates++
	s.Changes += len(changes)

	for _, c := range changes {
		switch c.Type {
		case Added:
			s.AddedMinutes += c.Range.Duration()
		case Removed:
			s.RemovedMinutes += c.Range.Duration()
		}
	}
}

func (s ChangeStats) String() string {
	return fmt.Sprintf(
		"%d %d +%s -%s",
		s.Updates, s.Changes, formatMinutes(s.AddedMinutes), formatMinutes(s.RemovedMinutes),
	)
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
