package availability

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a closed Monday-first day enum. Class timetables only populate
// Monday through Friday; reservations may land on weekends.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Korean single-character labels; these are the client contract for
// free_slots_by_day keys.
var weekdayLabels = [...]string{"월", "화", "수", "목", "금", "토", "일"}

// ParseWeekday tolerates both the Mon/Tue naming and the Korean 월/화 labels
// observed in timetable rows. Matching on names is case-insensitive and
// accepts full names ("Monday") via their three-letter prefix.
func ParseWeekday(raw string) (Weekday, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty weekday")
	}

	for i, label := range weekdayLabels {
		if s == label {
			return Weekday(i), nil
		}
	}

	name := strings.ToLower(s)
	if len(name) > 3 {
		name = name[:3]
	}
	for i, candidate := range weekdayNames {
		if name == strings.ToLower(candidate) {
			return Weekday(i), nil
		}
	}

	return 0, fmt.Errorf("unknown weekday %q", raw)
}

// WeekdayOf maps a stdlib weekday onto the Monday-first enum.
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(int(d) - 1)
}

// ClassDays returns the days a class timetable can occupy, in order.
func ClassDays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// Valid reports whether d is within the closed enum.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Label returns the Korean client-facing label.
func (d Weekday) Label() string {
	if !d.Valid() {
		return ""
	}
	return weekdayLabels[d]
}
