package model

import (
	"github.com/bits-and-blooms/bitset"
)

// MinutesPerDay is the number of minutes in a single day.
const MinutesPerDay = 1440

// Minutes is a set of minutes of a single day, one bit per minute.
//
// It is the intermediate form of every add/remove/diff operation:
// bit i is set when the minute starting at i is covered.
type Minutes struct {
	bits *bitset.BitSet
}

func newMinutes() Minutes {
	return Minutes{bits: bitset.New(MinutesPerDay)}
}

// minutesBetween returns the set [from, to).
func minutesBetween(from, to int) Minutes {
	m := newMinutes()
	for i := from; i < to; i++ {
		m.bits.Set(uint(i))
	}

	return m
}

func (m Minutes) Union(other Minutes) Minutes {
	return Minutes{bits: m.bits.Union(other.bits)}
}

// Difference returns the minutes of m that are not in other.
func (m Minutes) Difference(other Minutes) Minutes {
	return Minutes{bits: m.bits.Difference(other.bits)}
}

// Contains reports whether every minute of other is also in m.
func (m Minutes) Contains(other Minutes) bool {
	return m.bits.IsSuperSet(other.bits)
}

func (m Minutes) Intersects(other Minutes) bool {
	return m.bits.IntersectionCardinality(other.bits) > 0
}

func (m Minutes) IsEmpty() bool {
	return m.bits.None()
}

// Count returns the number of covered minutes.
func (m Minutes) Count() int {
	return int(m.bits.Count())
}

func (m Minutes) Has(minute int) bool {
	return m.bits.Test(uint(minute))
}

// Ranges converts every maximal run of set bits into an HourRange.
// A run ending at the end of the day is terminated by "24:00".
func (m Minutes) Ranges() []HourRange {
	var ranges []HourRange

	start := -1
	for i := 0; i <= MinutesPerDay; i++ {
		set := i < MinutesPerDay && m.Has(i)
		switch {
		case set && start < 0:
			start = i
		case !set && start >= 0:
			ranges = append(ranges, HourRange{from: hourAt(start), to: hourAt(i)})
			start = -1
		}
	}

	return ranges
}

func (m Minutes) Equal(other Minutes) bool {
	return m.bits.Equal(other.bits)
}
