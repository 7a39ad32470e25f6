package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/availability"
	"github.com/team7/classroom-informer-api/internal/dto"
	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type timetableRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]models.TimetableEntry, error)
}

type roomResolver interface {
	ResolveRoom(ctx context.Context, buildingCode, roomNumber string) (*models.Room, error)
}

// AvailabilityWindow holds the default free-slot reporting bounds.
type AvailabilityWindow struct {
	Start string
	End   string
}

// FreeSlotsRequest identifies a room and an optional window override.
type FreeSlotsRequest struct {
	BuildingCode string
	RoomNumber   string
	StartTime    string
	EndTime      string
}

// AvailableRoomsRequest asks which rooms of a building leave every requested
// slot free.
type AvailableRoomsRequest struct {
	BuildingCode string
	Slots        []string
	RoomNumber   string
}

// AvailabilityService wraps the interval engine with identifier resolution,
// occupancy fetching and response shaping.
type AvailabilityService struct {
	resolver  roomResolver
	buildings buildingRepository
	rooms     roomRepository
	timetable timetableRepository
	cache     *CacheService
	window    AvailabilityWindow
	logger    *zap.Logger
}

// NewAvailabilityService instantiates AvailabilityService.
func NewAvailabilityService(resolver roomResolver, buildings buildingRepository, rooms roomRepository, timetable timetableRepository, cache *CacheService, window AvailabilityWindow, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if window.Start == "" {
		window.Start = "09:00"
	}
	if window.End == "" {
		window.End = "20:00"
	}
	return &AvailabilityService{
		resolver:  resolver,
		buildings: buildings,
		rooms:     rooms,
		timetable: timetable,
		cache:     cache,
		window:    window,
		logger:    logger,
	}
}

// FreeSlotsByDay computes a room's free slots for every class day within the
// window. The boolean reports whether the response came from cache.
func (s *AvailabilityService) FreeSlotsByDay(ctx context.Context, req FreeSlotsRequest) (*dto.FreeSlotsResponse, bool, error) {
	room, err := s.resolver.ResolveRoom(ctx, req.BuildingCode, req.RoomNumber)
	if err != nil {
		return nil, false, err
	}

	window, err := s.parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, false, err
	}

	cacheKey := fmt.Sprintf("freeslots:%d:%s", room.ID, window)
	cached := &dto.FreeSlotsResponse{}
	if hit, _ := s.cache.Get(ctx, cacheKey, cached); hit {
		return cached, true, nil
	}

	entries, err := s.timetable.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	occupied := s.groupByDay(entries)

	byDay := make(map[string][]dto.FreeSlot, len(availability.ClassDays()))
	for _, day := range availability.ClassDays() {
		free := availability.FreeSlots(occupied[day], window)
		slots := make([]dto.FreeSlot, 0, len(free))
		for _, iv := range free {
			slots = append(slots, dto.FreeSlot{Start: iv.Start.String(), End: iv.End.String()})
		}
		byDay[day.Label()] = slots
	}

	resp := &dto.FreeSlotsResponse{
		BuildingCode:   room.BuildingCode,
		RoomNumber:     room.RoomNumber,
		FreeSlotsByDay: byDay,
	}

	_ = s.cache.Set(ctx, cacheKey, resp, 0)
	return resp, false, nil
}

// AvailableRooms returns rooms of the building whose timetable leaves every
// requested slot free. Malformed slots are a client error, never "occupied".
// An unknown building yields an empty list, matching the search contract.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, req AvailableRoomsRequest) ([]dto.AvailableRoom, error) {
	if len(req.Slots) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one slot is required")
	}

	requested := make([]availability.Interval, 0, len(req.Slots))
	for _, raw := range req.Slots {
		iv, err := availability.ParseSlot(raw)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
		}
		requested = append(requested, iv)
	}

	building, err := s.buildings.FindByCode(ctx, strings.TrimSpace(req.BuildingCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []dto.AvailableRoom{}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load building")
	}

	rooms, err := s.candidateRooms(ctx, building.ID, req.RoomNumber)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		entries, err := s.timetable.ListByRoom(ctx, room.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
		}

		// Requested slots carry no weekday, so every entry counts as
		// occupancy regardless of its day.
		occupied := make([]availability.Interval, 0, len(entries))
		for _, entry := range entries {
			_, iv, err := availability.NormalizeTimetableRow(entry.Day, entry.StartTime, entry.EndTime)
			if err != nil {
				s.logger.Warn("skipping malformed timetable row",
					zap.Int64("room_id", room.ID), zap.Int64("entry_id", entry.ID), zap.Error(err))
				continue
			}
			occupied = append(occupied, iv)
		}

		if availability.AllSlotsFree(occupied, requested) {
			result = append(result, dto.AvailableRoom{
				RoomID:       room.ID,
				BuildingCode: building.Code,
				RoomNumber:   room.RoomNumber,
			})
		}
	}

	return result, nil
}

func (s *AvailabilityService) candidateRooms(ctx context.Context, buildingID int64, roomNumber string) ([]models.Room, error) {
	roomNumber = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(roomNumber), "호"))
	if roomNumber == "" {
		rooms, err := s.rooms.ListByBuilding(ctx, buildingID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
		}
		return rooms, nil
	}

	room, err := s.rooms.FindByNumber(ctx, buildingID, roomNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return []models.Room{*room}, nil
}

func (s *AvailabilityService) groupByDay(entries []models.TimetableEntry) map[availability.Weekday][]availability.Interval {
	occupied := make(map[availability.Weekday][]availability.Interval)
	for _, entry := range entries {
		day, iv, err := availability.NormalizeTimetableRow(entry.Day, entry.StartTime, entry.EndTime)
		if err != nil {
			s.logger.Warn("skipping malformed timetable row",
				zap.Int64("room_id", entry.RoomID), zap.Int64("entry_id", entry.ID), zap.Error(err))
			continue
		}
		occupied[day] = append(occupied[day], iv)
	}
	return occupied
}

func (s *AvailabilityService) parseWindow(startRaw, endRaw string) (availability.Interval, error) {
	if startRaw == "" {
		startRaw = s.window.Start
	}
	if endRaw == "" {
		endRaw = s.window.End
	}

	start, err := availability.ParseTimeOfDay(startRaw)
	if err != nil {
		return availability.Interval{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid start_time")
	}
	end, err := availability.ParseTimeOfDay(endRaw)
	if err != nil {
		return availability.Interval{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end_time")
	}

	window, err := availability.NewInterval(start, end)
	if err != nil {
		return availability.Interval{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "window start must be before end")
	}
	return window, nil
}
