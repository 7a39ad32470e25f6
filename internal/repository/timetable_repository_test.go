package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestTimetableRepositoryListByRoom(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	rows := sqlmock.NewRows([]string{"id", "room_id", "day", "start_time", "end_time", "course_code", "course_name", "instructor"}).
		AddRow(1, 101, "월", "10:00:00", "10:50:00", "CS101", "자료구조", "김교수").
		AddRow(2, 101, "월", "13:00:00", "14:50:00", "CS202", "운영체제", "이교수")
	mock.ExpectQuery(regexp.QuoteMeta("FROM timetable_entries WHERE room_id = $1")).
		WithArgs(int64(101)).
		WillReturnRows(rows)

	entries, err := repo.ListByRoom(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "월", entries[0].Day)
	require.Equal(t, "10:00:00", entries[0].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentTimetableRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentTimetableRepository(db)
	rows := sqlmock.NewRows([]string{"id", "student_id", "day", "start_time", "end_time", "course_code", "course_name", "location"}).
		AddRow(1, favUserID, "화", "09:00:00", "10:15:00", "MA201", "선형대수", "IT5 225")
	mock.ExpectQuery(regexp.QuoteMeta("FROM student_timetable WHERE student_id = $1")).
		WithArgs(favUserID).
		WillReturnRows(rows)

	entries, err := repo.ListByStudent(context.Background(), favUserID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "MA201", entries[0].CourseCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
