package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as seconds since
// midnight. Timetables are location-local, so it carries no zone.
type TimeOfDay int

// At builds a TimeOfDay from an hour and minute.
func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60)
}

// FromTime extracts the wall-clock portion of an absolute timestamp.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.ffffff forms.
// Fractional seconds are truncated; only hour/minute/second are significant.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", raw)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", raw)
		}
		fields[i] = n
	}

	hour, minute, second := fields[0], fields[1], fields[2]
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("time %q out of range", raw)
	}

	return TimeOfDay(hour*3600 + minute*60 + second), nil
}

// Clock returns the hour, minute and second components.
func (t TimeOfDay) Clock() (hour, minute, second int) {
	return int(t) / 3600, int(t) % 3600 / 60, int(t) % 60
}

// String renders the client-facing HH:MM form.
func (t TimeOfDay) String() string {
	hour, minute, _ := t.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
