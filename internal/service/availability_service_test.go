package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type fakeBuildingRepo struct {
	buildings map[string]models.Building
	err       error
}

func (f *fakeBuildingRepo) List(ctx context.Context) ([]models.Building, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Building, 0, len(f.buildings))
	for _, b := range f.buildings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBuildingRepo) FindByCode(ctx context.Context, code string) (*models.Building, error) {
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.buildings[code]; ok {
		return &b, nil
	}
	return nil, sql.ErrNoRows
}

type fakeRoomRepo struct {
	rooms map[int64]models.Room
	err   error
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) ListByBuilding(ctx context.Context, buildingID int64) ([]models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Room, 0)
	for _, r := range f.rooms {
		if r.BuildingID == buildingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.rooms[id]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRoomRepo) FindByNumber(ctx context.Context, buildingID int64, roomNumber string) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rooms {
		if r.BuildingID == buildingID && r.RoomNumber == roomNumber {
			room := r
			return &room, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeTimetableRepo struct {
	entries map[int64][]models.TimetableEntry
	err     error
}

func (f *fakeTimetableRepo) ListByRoom(ctx context.Context, roomID int64) ([]models.TimetableEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[roomID], nil
}

type fakeResolver struct {
	room *models.Room
	err  error
}

func (f *fakeResolver) ResolveRoom(ctx context.Context, buildingCode, roomNumber string) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

func newAvailabilityFixture() (*fakeBuildingRepo, *fakeRoomRepo, *fakeTimetableRepo) {
	buildings := &fakeBuildingRepo{buildings: map[string]models.Building{
		"IT5": {ID: 1, Code: "IT5", Name: "IT융복합관"},
	}}
	rooms := &fakeRoomRepo{rooms: map[int64]models.Room{
		101: {ID: 101, BuildingID: 1, RoomNumber: "225", BuildingCode: "IT5"},
		102: {ID: 102, BuildingID: 1, RoomNumber: "301", BuildingCode: "IT5"},
	}}
	timetable := &fakeTimetableRepo{entries: map[int64][]models.TimetableEntry{
		101: {
			{ID: 1, RoomID: 101, Day: "월", StartTime: "10:00", EndTime: "10:50"},
			{ID: 2, RoomID: 101, Day: "월", StartTime: "13:00", EndTime: "14:50"},
			{ID: 3, RoomID: 101, Day: "화", StartTime: "09:00", EndTime: "20:00"},
		},
		102: {},
	}}
	return buildings, rooms, timetable
}

func TestAvailabilityServiceFreeSlotsByDay(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	room := rooms.rooms[101]
	svc := NewAvailabilityService(&fakeResolver{room: &room}, buildings, rooms, timetable,
		NewCacheService(nil, nil, 0, zap.NewNop(), false), AvailabilityWindow{Start: "09:00", End: "20:00"}, zap.NewNop())

	resp, cached, err := svc.FreeSlotsByDay(context.Background(), FreeSlotsRequest{BuildingCode: "IT5", RoomNumber: "225"})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "IT5", resp.BuildingCode)
	assert.Equal(t, "225", resp.RoomNumber)

	monday := resp.FreeSlotsByDay["월"]
	require.Len(t, monday, 3)
	assert.Equal(t, "09:00", monday[0].Start)
	assert.Equal(t, "10:00", monday[0].End)
	assert.Equal(t, "10:50", monday[1].Start)
	assert.Equal(t, "13:00", monday[1].End)
	assert.Equal(t, "14:50", monday[2].Start)
	assert.Equal(t, "20:00", monday[2].End)

	// Tuesday is fully occupied.
	assert.Empty(t, resp.FreeSlotsByDay["화"])

	// Days without entries report the whole window free.
	wednesday := resp.FreeSlotsByDay["수"]
	require.Len(t, wednesday, 1)
	assert.Equal(t, "09:00", wednesday[0].Start)
	assert.Equal(t, "20:00", wednesday[0].End)

	assert.Len(t, resp.FreeSlotsByDay, 5)
}

func TestAvailabilityServiceFreeSlotsByDayUnknownRoom(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	svc := NewAvailabilityService(&fakeResolver{err: appErrors.Clone(appErrors.ErrNotFound, "room not found")},
		buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	_, _, err := svc.FreeSlotsByDay(context.Background(), FreeSlotsRequest{BuildingCode: "IT5", RoomNumber: "999"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestAvailabilityServiceFreeSlotsByDayBadWindow(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	room := rooms.rooms[101]
	svc := NewAvailabilityService(&fakeResolver{room: &room}, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	_, _, err := svc.FreeSlotsByDay(context.Background(), FreeSlotsRequest{StartTime: "18:00", EndTime: "09:00"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, _, err = svc.FreeSlotsByDay(context.Background(), FreeSlotsRequest{StartTime: "9am"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAvailabilityServiceFreeSlotsByDaySkipsMalformedRows(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	timetable.entries[101] = append(timetable.entries[101],
		models.TimetableEntry{ID: 99, RoomID: 101, Day: "월", StartTime: "garbled", EndTime: "11:00"})
	room := rooms.rooms[101]
	svc := NewAvailabilityService(&fakeResolver{room: &room}, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	resp, _, err := svc.FreeSlotsByDay(context.Background(), FreeSlotsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.FreeSlotsByDay["월"], 3)
}

func TestAvailabilityServiceAvailableRooms(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	svc := NewAvailabilityService(nil, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	// Room 101 is busy 10:00-10:50; room 102 has no classes at all.
	result, err := svc.AvailableRooms(context.Background(), AvailableRoomsRequest{
		BuildingCode: "IT5",
		Slots:        []string{"10:00-11:00"},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(102), result[0].RoomID)
	assert.Equal(t, "IT5", result[0].BuildingCode)
	assert.Equal(t, "301", result[0].RoomNumber)

	// A slot clear of every entry keeps both rooms.
	result, err = svc.AvailableRooms(context.Background(), AvailableRoomsRequest{
		BuildingCode: "IT5",
		Slots:        []string{"08:00-09:00"},
	})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAvailabilityServiceAvailableRoomsMalformedSlot(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	svc := NewAvailabilityService(nil, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	for _, raw := range []string{"10:00", "11:00-10:00", "aa:bb-cc:dd", ""} {
		_, err := svc.AvailableRooms(context.Background(), AvailableRoomsRequest{BuildingCode: "IT5", Slots: []string{raw}})
		require.Error(t, err, raw)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code, raw)
	}

	_, err := svc.AvailableRooms(context.Background(), AvailableRoomsRequest{BuildingCode: "IT5"})
	require.Error(t, err)
}

func TestAvailabilityServiceAvailableRoomsUnknownBuilding(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	svc := NewAvailabilityService(nil, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	result, err := svc.AvailableRooms(context.Background(), AvailableRoomsRequest{
		BuildingCode: "NOPE",
		Slots:        []string{"10:00-11:00"},
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestAvailabilityServiceAvailableRoomsRoomNumberFilter(t *testing.T) {
	buildings, rooms, timetable := newAvailabilityFixture()
	svc := NewAvailabilityService(nil, buildings, rooms, timetable, nil, AvailabilityWindow{}, zap.NewNop())

	result, err := svc.AvailableRooms(context.Background(), AvailableRoomsRequest{
		BuildingCode: "IT5",
		Slots:        []string{"08:00-09:00"},
		RoomNumber:   "301호",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(102), result[0].RoomID)

	result, err = svc.AvailableRooms(context.Background(), AvailableRoomsRequest{
		BuildingCode: "IT5",
		Slots:        []string{"08:00-09:00"},
		RoomNumber:   "999",
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}
