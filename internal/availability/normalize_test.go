package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestNormalizeTimetableRow(t *testing.T) {
	day, interval, err := NormalizeTimetableRow("월", "09:00:00", "10:15:00.500000")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)
	assert.Equal(t, At(9, 0), interval.Start)
	assert.Equal(t, At(10, 15), interval.End)

	day, _, err = NormalizeTimetableRow("Tue", "13:00", "14:00")
	require.NoError(t, err)
	assert.Equal(t, Tuesday, day)
}

func TestNormalizeTimetableRow_Rejects(t *testing.T) {
	_, _, err := NormalizeTimetableRow("월", "10:00", "09:00")
	assert.Error(t, err, "non-chronological interval")

	_, _, err = NormalizeTimetableRow("Noday", "09:00", "10:00")
	assert.Error(t, err)

	_, _, err = NormalizeTimetableRow("월", "late", "10:00")
	assert.Error(t, err)
}

func TestNormalizeReservation(t *testing.T) {
	loc := seoul(t)
	// 2024-11-11 is a Monday in KST.
	start := time.Date(2024, 11, 11, 13, 0, 0, 0, loc)
	end := time.Date(2024, 11, 11, 15, 30, 0, 0, loc)

	day, interval, err := NormalizeReservation(start, end, loc)
	require.NoError(t, err)
	assert.Equal(t, Monday, day)
	assert.Equal(t, At(13, 0), interval.Start)
	assert.Equal(t, At(15, 30), interval.End)
}

func TestNormalizeReservation_ConvertsToLocalZone(t *testing.T) {
	loc := seoul(t)
	// 03:00 UTC is 12:00 KST the same day.
	start := time.Date(2024, 11, 12, 3, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 12, 5, 0, 0, 0, time.UTC)

	day, interval, err := NormalizeReservation(start, end, loc)
	require.NoError(t, err)
	assert.Equal(t, Tuesday, day)
	assert.Equal(t, At(12, 0), interval.Start)
	assert.Equal(t, At(14, 0), interval.End)
}

func TestNormalizeReservation_CrossMidnightIsAnomaly(t *testing.T) {
	loc := seoul(t)
	start := time.Date(2024, 11, 11, 23, 0, 0, 0, loc)
	end := time.Date(2024, 11, 12, 1, 0, 0, 0, loc)

	_, _, err := NormalizeReservation(start, end, loc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCrossMidnight)
}
