package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_Formats(t *testing.T) {
	cases := []struct {
		raw  string
		want TimeOfDay
	}{
		{"09:00", At(9, 0)},
		{"09:05:30", TimeOfDay(9*3600 + 5*60 + 30)},
		{"14:30:00.123456", At(14, 30)},
		{" 09:00 ", At(9, 0)},
		{"00:00", TimeOfDay(0)},
		{"23:59:59", TimeOfDay(23*3600 + 59*60 + 59)},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseTimeOfDay_Rejects(t *testing.T) {
	for _, raw := range []string{"", "9", "09", "24:00", "09:60", "09:00:60", "ab:cd", "09-00", "09:00:00:00"} {
		_, err := ParseTimeOfDay(raw)
		assert.Error(t, err, raw)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", At(9, 5).String())
	got, err := ParseTimeOfDay("18:00:30")
	require.NoError(t, err)
	assert.Equal(t, "18:00", got.String())
}

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("09:00-10:30")
	require.NoError(t, err)
	assert.Equal(t, iv(9, 0, 10, 30), slot)

	for _, raw := range []string{"09:00", "09:00-10:00-11:00", "-", "09:00-", "zz:00-10:00", "10:00-09:00", "10:00-10:00"} {
		_, err := ParseSlot(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseWeekday_BothLabelSets(t *testing.T) {
	cases := map[string]Weekday{
		"Mon":    Monday,
		"mon":    Monday,
		"MONDAY": Monday,
		"Fri":    Friday,
		"월":      Monday,
		"금":      Friday,
		"일":      Sunday,
	}
	for raw, want := range cases {
		got, err := ParseWeekday(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseWeekday("Funday")
	assert.Error(t, err)
	_, err = ParseWeekday("")
	assert.Error(t, err)
}

func TestWeekdayLabelsAndOrder(t *testing.T) {
	assert.Equal(t, []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, ClassDays())
	assert.Equal(t, "월", Monday.Label())
	assert.Equal(t, "금", Friday.Label())
	assert.Equal(t, "Wed", Wednesday.String())
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Saturday, WeekdayOf(time.Saturday))
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
}
