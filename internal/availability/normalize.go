package availability

import (
	"errors"
	"fmt"
	"time"
)

// ErrCrossMidnight flags a reservation whose interval spans midnight. Those
// are out of scope and must be surfaced as an anomaly, not truncated.
var ErrCrossMidnight = errors.New("reservation spans midnight")

// NormalizeTimetableRow converts a raw timetable row into its day and
// occupied interval. All tolerance for heterogeneous day labels and time
// formats lives here.
func NormalizeTimetableRow(day, start, end string) (Weekday, Interval, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return 0, Interval{}, err
	}

	startAt, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, Interval{}, err
	}
	endAt, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, Interval{}, err
	}

	iv, err := NewInterval(startAt, endAt)
	if err != nil {
		return 0, Interval{}, err
	}
	return d, iv, nil
}

// NormalizeReservation reduces a confirmed reservation's absolute timestamps
// to a day label and time-of-day interval in the deployment's local zone.
func NormalizeReservation(startAt, endAt time.Time, loc *time.Location) (Weekday, Interval, error) {
	localStart := startAt.In(loc)
	localEnd := endAt.In(loc)

	sy, sm, sd := localStart.Date()
	ey, em, ed := localEnd.Date()
	if sy != ey || sm != em || sd != ed {
		return 0, Interval{}, fmt.Errorf("%w: %s to %s", ErrCrossMidnight,
			localStart.Format(time.RFC3339), localEnd.Format(time.RFC3339))
	}

	iv, err := NewInterval(FromTime(localStart), FromTime(localEnd))
	if err != nil {
		return 0, Interval{}, err
	}
	return WeekdayOf(localStart.Weekday()), iv, nil
}
