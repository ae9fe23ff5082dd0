package model

import (
	"iter"
	"slices"
	"strings"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
)

const kindHourRanges = "hour ranges"

// HourRanges is a non-empty list of hour ranges of a single nominal day,
// written as "09:00-12:00+13:00-17:00". The declaration order is kept.
type HourRanges struct {
	ranges []HourRange
}

func NewHourRanges(ranges ...HourRange) (*HourRanges, error) {
	if len(ranges) == 0 {
		return nil, apierror.NewStateError(apierror.ErrHourRangesEmpty)
	}

	return &HourRanges{ranges: slices.Clone(ranges)}, nil
}

// ParseHourRanges parses ranges joined by "+".
//
// Empty tokens are skipped, so "09:00-12:00++13:00-17:00" is accepted.
func ParseHourRanges(text string) (*HourRanges, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool { return r == '+' })
	if len(tokens) == 0 {
		return nil, apierror.NewFormatError(kindHourRanges, text, apierror.ExampleHourRanges)
	}

	ranges := make([]HourRange, 0, len(tokens))
	for _, token := range tokens {
		r, err := ParseHourRange(token)
		if err != nil {
			return nil, apierror.NewFormatError(kindHourRanges, text, apierror.ExampleHourRanges)
		}

		ranges = append(ranges, r)
	}

	return &HourRanges{ranges: ranges}, nil
}

func MustParseHourRanges(text string) *HourRanges {
	h, err := ParseHourRanges(text)
	if err != nil {
		panic(err)
	}

	return h
}

// IsValidHourRanges reports whether text is well-formed.
// An empty text means absence and is valid.
func IsValidHourRanges(text string) bool {
	if text == "" {
		return true
	}

	_, err := ParseHourRanges(text)
	return err == nil
}

// fromMinutes rebuilds hour ranges from the runs of a minute set.
// It returns nil for an empty set.
func fromMinutes(m Minutes) *HourRanges {
	ranges := m.Ranges()
	if len(ranges) == 0 {
		return nil
	}

	return &HourRanges{ranges: ranges}
}

// Ranges returns a copy of the contained ranges in declaration order.
func (h *HourRanges) Ranges() []HourRange {
	return slices.Clone(h.ranges)
}

// All iterates over the contained ranges in declaration order.
// Every call starts a new iteration.
func (h *HourRanges) All() iter.Seq[HourRange] {
	return func(yield func(HourRange) bool) {
		for _, r := range h.ranges {
			if !yield(r) {
				return
			}
		}
	}
}

func (h *HourRanges) Len() int {
	return len(h.ranges)
}

// IsNormalized reports whether none of the ranges wraps past midnight.
func (h *HourRanges) IsNormalized() bool {
	for _, r := range h.ranges {
		if !r.IsNormalized() {
			return false
		}
	}

	return true
}

// Normalize splits the ranges into the ones of the current day and
// the ones spilling over into the next day. It returns one element
// if nothing wraps past midnight, two otherwise.
func (h *HourRanges) Normalize() []*HourRanges {
	today := make([]HourRange, 0, len(h.ranges))
	var tomorrow []HourRange

	for _, r := range h.ranges {
		parts := r.Normalize()
		today = append(today, parts[0])
		if len(parts) == 2 {
			tomorrow = append(tomorrow, parts[1])
		}
	}

	if len(tomorrow) == 0 {
		return []*HourRanges{{ranges: today}}
	}

	return []*HourRanges{{ranges: today}, {ranges: tomorrow}}
}

// ToMinutes returns the union of all ranges as a minute set.
func (h *HourRanges) ToMinutes() (Minutes, error) {
	if !h.IsNormalized() {
		return Minutes{}, apierror.NewStateError("%s: %s", apierror.ErrRangesTwoDays, h)
	}

	m := newMinutes()
	for _, r := range h.ranges {
		rm, _ := r.ToMinutes()
		m = m.Union(rm)
	}

	return m, nil
}

// Overlaps reports whether any range overlaps any range of other.
func (h *HourRanges) Overlaps(other *HourRanges) bool {
	for _, r := range h.ranges {
		for _, o := range other.ranges {
			if r.Overlaps(o) {
				return true
			}
		}
	}

	return false
}

// OpenAt reports whether every minute of r is covered by these ranges.
func (h *HourRanges) OpenAt(r HourRange) (bool, error) {
	m, err := h.ToMinutes()
	if err != nil {
		return false, err
	}

	rm, err := r.ToMinutes()
	if err != nil {
		return false, err
	}

	return m.Contains(rm), nil
}

// Add returns the union of both hour ranges, merging adjacent and
// overlapping ranges. Both must be normalized.
func (h *HourRanges) Add(other *HourRanges) (*HourRanges, error) {
	m, o, err := minutesOfBoth(h, other)
	if err != nil {
		return nil, err
	}

	return fromMinutes(m.Union(o)), nil
}

// Remove returns the ranges left after removing other.
// The result is nil if nothing is left. Both must be normalized.
func (h *HourRanges) Remove(other *HourRanges) (*HourRanges, error) {
	m, o, err := minutesOfBoth(h, other)
	if err != nil {
		return nil, err
	}

	return fromMinutes(m.Difference(o)), nil
}

// Diff returns the changes that turn h into to: first the removed
// ranges, then the added ones, each in ascending order.
func (h *HourRanges) Diff(to *HourRanges) ([]HourRangeChange, error) {
	if !h.IsNormalized() {
		return nil, apierror.NewStateError("%s%s", apierror.ErrDiffFromMultiDay, h)
	}

	if !to.IsNormalized() {
		return nil, apierror.NewStateError("%s%s", apierror.ErrDiffToMultiDay, to)
	}

	m, o, _ := minutesOfBoth(h, to)

	removed := m.Difference(o).Ranges()
	added := o.Difference(m).Ranges()

	changes := make([]HourRangeChange, 0, len(removed)+len(added))
	for _, r := range removed {
		changes = append(changes, HourRangeChange{Type: Removed, Range: r})
	}

	for _, r := range added {
		changes = append(changes, HourRangeChange{Type: Added, Range: r})
	}

	return changes, nil
}

// AsChanges turns every range into a change of the given type.
func (h *HourRanges) AsChanges(changeType ChangeType) []HourRangeChange {
	changes := make([]HourRangeChange, 0, len(h.ranges))
	for _, r := range h.ranges {
		changes = append(changes, HourRangeChange{Type: changeType, Range: r})
	}

	return changes
}

// Equal compares the ranges in declaration order.
func (h *HourRanges) Equal(other *HourRanges) bool {
	if h == nil || other == nil {
		return h == other
	}

	return slices.Equal(h.ranges, other.ranges)
}

func (h *HourRanges) String() string {
	parts := make([]string, 0, len(h.ranges))
	for _, r := range h.ranges {
		parts = append(parts, r.String())
	}

	return strings.Join(parts, "+")
}

func (h *HourRanges) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HourRanges) UnmarshalText(data []byte) error {
	parsed, err := ParseHourRanges(string(data))
	if err != nil {
		return err
	}

	*h = *parsed
	return nil
}

func minutesOfBoth(a, b *HourRanges) (Minutes, Minutes, error) {
	m, err := a.ToMinutes()
	if err != nil {
		return Minutes{}, Minutes{}, err
	}

	o, err := b.ToMinutes()
	if err != nil {
		return Minutes{}, Minutes{}, err
	}

	return m, o, nil
}
