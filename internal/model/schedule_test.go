package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChangeStats(t *testing.T) {
	var stats ChangeStats

	changes, err := MustParseWeeklyOpeningHours("Mon 09:00-12:00").Diff(MustParseWeeklyOpeningHours("Mon 10:00-14:30"))
	require.NoError(t, err)

	stats.Record(changes)
	stats.Record(nil)

	require.Equal(t, 2, stats.Updates)
	require.Equal(t, 2, stats.Changes)
	require.Equal(t, 150, stats.AddedMinutes)
	require.Equal(t, 60, stats.RemovedMinutes)
	require.Equal(t, "2 2 +02:30 -01:00", stats.String())
}

func TestScheduleChanges(t *testing.T) {
	changes := NewScheduleChanges("shop-1", MustParseWeeklyOpeningHours("Sat 10:00-12:00").AsAddedChanges())
	require.Len(t, changes, 1)
	require.Equal(t, "shop-1 ADDED SAT 10:00-12:00", changes[0].String())

	update := NewScheduleUpdate("shop-1", MustParseWeeklyOpeningHours("sat/sun 10:00-12:00"), 3)
	require.Equal(t, "shop-1 SAT/SUN 10:00-12:00", update.String())
}
