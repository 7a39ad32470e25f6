package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type fakeStudentTimetableRepo struct {
	entries map[string][]models.StudentTimetableEntry
	err     error
}

func (f *fakeStudentTimetableRepo) ListByStudent(ctx context.Context, studentID string) ([]models.StudentTimetableEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[studentID], nil
}

func TestTimetableServiceRoomTimetable(t *testing.T) {
	room := models.Room{ID: 101, BuildingID: 1, RoomNumber: "225", BuildingCode: "IT5"}
	timetable := &fakeTimetableRepo{entries: map[int64][]models.TimetableEntry{
		101: {{ID: 1, RoomID: 101, Day: "월", StartTime: "10:00", EndTime: "10:50", CourseCode: "CS101"}},
	}}
	svc := NewTimetableService(&fakeResolver{room: &room}, timetable, &fakeStudentTimetableRepo{}, false, zap.NewNop())

	entries, err := svc.RoomTimetable(context.Background(), "IT5", "225")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CS101", entries[0].CourseCode)
}

func TestTimetableServiceRoomTimetableEmpty(t *testing.T) {
	room := models.Room{ID: 102, BuildingID: 1, RoomNumber: "301", BuildingCode: "IT5"}
	svc := NewTimetableService(&fakeResolver{room: &room}, &fakeTimetableRepo{}, &fakeStudentTimetableRepo{}, false, zap.NewNop())

	entries, err := svc.RoomTimetable(context.Background(), "IT5", "301")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestTimetableServiceStudentTimetable(t *testing.T) {
	students := &fakeStudentTimetableRepo{entries: map[string][]models.StudentTimetableEntry{
		testUserID: {{ID: 1, StudentID: testUserID, Day: "월", StartTime: "09:00", EndTime: "10:15", CourseCode: "MA201", Location: "IT5 225"}},
	}}
	svc := NewTimetableService(&fakeResolver{}, &fakeTimetableRepo{}, students, false, zap.NewNop())

	entries, err := svc.StudentTimetable(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "MA201", entries[0].CourseCode)

	empty, err := svc.StudentTimetable(context.Background(), "unknown")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTimetableServiceExportCSV(t *testing.T) {
	room := models.Room{ID: 101, BuildingID: 1, RoomNumber: "225", BuildingCode: "IT5"}
	timetable := &fakeTimetableRepo{entries: map[int64][]models.TimetableEntry{
		101: {{ID: 1, RoomID: 101, Day: "월", StartTime: "10:00", EndTime: "10:50", CourseCode: "CS101", CourseName: "자료구조", Instructor: "김교수"}},
	}}
	svc := NewTimetableService(&fakeResolver{room: &room}, timetable, &fakeStudentTimetableRepo{}, true, zap.NewNop())

	result, err := svc.ExportTimetable(context.Background(), ExportRequest{BuildingCode: "IT5", RoomNumber: "225"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "timetable_IT5_225.csv", result.Filename)

	body := string(result.Content)
	assert.True(t, strings.HasPrefix(body, "day,start_time,end_time,course_code,course_name,instructor"))
	assert.Contains(t, body, "Mon,10:00,10:50,CS101")
}

func TestTimetableServiceExportPDF(t *testing.T) {
	room := models.Room{ID: 101, BuildingID: 1, RoomNumber: "225", BuildingCode: "IT5"}
	timetable := &fakeTimetableRepo{entries: map[int64][]models.TimetableEntry{
		101: {{ID: 1, RoomID: 101, Day: "월", StartTime: "10:00", EndTime: "10:50", CourseCode: "CS101"}},
	}}
	svc := NewTimetableService(&fakeResolver{room: &room}, timetable, &fakeStudentTimetableRepo{}, true, zap.NewNop())

	result, err := svc.ExportTimetable(context.Background(), ExportRequest{BuildingCode: "IT5", RoomNumber: "225", Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "timetable_IT5_225.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestTimetableServiceExportDisabled(t *testing.T) {
	svc := NewTimetableService(&fakeResolver{}, &fakeTimetableRepo{}, &fakeStudentTimetableRepo{}, false, zap.NewNop())

	_, err := svc.ExportTimetable(context.Background(), ExportRequest{BuildingCode: "IT5", RoomNumber: "225"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceExportBadFormat(t *testing.T) {
	svc := NewTimetableService(&fakeResolver{}, &fakeTimetableRepo{}, &fakeStudentTimetableRepo{}, true, zap.NewNop())

	_, err := svc.ExportTimetable(context.Background(), ExportRequest{BuildingCode: "IT5", RoomNumber: "225", Format: "xlsx"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
