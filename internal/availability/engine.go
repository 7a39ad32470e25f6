// Package availability computes free/occupied status for a single room on a
// single day. It is pure interval algebra over snapshots fetched elsewhere:
// no I/O, no shared state, safe to call from concurrent requests.
package availability

import "sort"

// FreeSlots returns the complement of the occupied intervals within the
// window, as disjoint sorted intervals strictly inside [window.Start,
// window.End). Occupied intervals may overlap or nest — double-booked rows
// are a data-quality reality, and the sweep merges them rather than failing.
func FreeSlots(occupied []Interval, window Interval) []Interval {
	sorted := make([]Interval, len(occupied))
	copy(sorted, occupied)
	// Ties broken by end time so shorter intervals are processed first,
	// which keeps overlap handling stable.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	free := []Interval{}
	cursor := window.Start

	for _, iv := range sorted {
		if iv.End <= cursor {
			continue
		}
		if iv.Start > cursor {
			gapEnd := iv.Start
			if gapEnd > window.End {
				gapEnd = window.End
			}
			if gapEnd > cursor {
				free = append(free, Interval{Start: cursor, End: gapEnd})
			}
		}
		if iv.End > cursor {
			cursor = iv.End
		}
		if cursor >= window.End {
			return free
		}
	}

	if cursor < window.End {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}

// InstantFree reports whether no occupied interval covers the instant under
// half-open semantics: a class ending at 10:50 no longer blocks the room at
// 10:50.
func InstantFree(occupied []Interval, at TimeOfDay) bool {
	for _, iv := range occupied {
		if iv.Contains(at) {
			return false
		}
	}
	return true
}

// AllSlotsFree reports whether every requested interval avoids every occupied
// interval. Touching endpoints do not count as overlap.
func AllSlotsFree(occupied, requested []Interval) bool {
	for _, req := range requested {
		for _, occ := range occupied {
			if occ.Overlaps(req) {
				return false
			}
		}
	}
	return true
}
