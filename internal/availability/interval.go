package availability

import (
	"fmt"
	"strings"
)

// Interval is a half-open [Start, End) span within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval validates the start < end invariant.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("interval start %s is not before end %s", start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// ParseSlot parses a requested "HH:MM-HH:MM" slot. A wrong token count or an
// unparsable time is a request validation failure, never "occupied".
func ParseSlot(raw string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("invalid slot %q: expected HH:MM-HH:MM", raw)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid slot %q: %w", raw, err)
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid slot %q: %w", raw, err)
	}

	return NewInterval(start, end)
}

// Overlaps applies the standard open-overlap test. Intervals touching at a
// shared boundary do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Contains reports half-open containment: an interval ending exactly at the
// instant no longer occupies it.
func (iv Interval) Contains(at TimeOfDay) bool {
	return iv.Start <= at && at < iv.End
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}
