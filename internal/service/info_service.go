package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type buildingRepository interface {
	List(ctx context.Context) ([]models.Building, error)
	FindByCode(ctx context.Context, code string) (*models.Building, error)
}

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	ListByBuilding(ctx context.Context, buildingID int64) ([]models.Room, error)
	FindByID(ctx context.Context, id int64) (*models.Room, error)
	FindByNumber(ctx context.Context, buildingID int64, roomNumber string) (*models.Room, error)
}

// RoomQuery identifies a room either by surrogate id or by the
// (building_code, room_number) pair.
type RoomQuery struct {
	RoomID       int64
	BuildingCode string
	RoomNumber   string
}

// InfoService serves building and room lookups, including the
// identifier-resolution step that turns building_code + room_number into a
// room id for the rest of the system.
type InfoService struct {
	buildings buildingRepository
	rooms     roomRepository
	logger    *zap.Logger
}

// NewInfoService instantiates InfoService.
func NewInfoService(buildings buildingRepository, rooms roomRepository, logger *zap.Logger) *InfoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InfoService{buildings: buildings, rooms: rooms, logger: logger}
}

// Buildings returns all buildings ordered by code.
func (s *InfoService) Buildings(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list buildings")
	}
	return buildings, nil
}

// Rooms lists rooms, optionally narrowed to one building by code.
func (s *InfoService) Rooms(ctx context.Context, buildingCode string) ([]models.Room, error) {
	buildingCode = strings.TrimSpace(buildingCode)
	if buildingCode == "" {
		rooms, err := s.rooms.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
		}
		return rooms, nil
	}

	building, err := s.findBuilding(ctx, buildingCode)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListByBuilding(ctx, building.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

// RoomDetails loads a single room by either identifier form.
func (s *InfoService) RoomDetails(ctx context.Context, query RoomQuery) (*models.Room, error) {
	if query.RoomID > 0 {
		room, err := s.rooms.FindByID(ctx, query.RoomID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("room id %d not found", query.RoomID))
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
		}
		return room, nil
	}

	if query.BuildingCode == "" || query.RoomNumber == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "room_id or building_code and room_number are required")
	}
	return s.ResolveRoom(ctx, query.BuildingCode, query.RoomNumber)
}

// ResolveRoom maps (building_code, room_number) to the room row. A trailing
// "호" suffix on the room number is tolerated, whatever the client sends.
func (s *InfoService) ResolveRoom(ctx context.Context, buildingCode, roomNumber string) (*models.Room, error) {
	building, err := s.findBuilding(ctx, strings.TrimSpace(buildingCode))
	if err != nil {
		return nil, err
	}

	roomNumber = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(roomNumber), "호"))
	room, err := s.rooms.FindByNumber(ctx, building.ID, roomNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("room %s in building %s not found", roomNumber, building.Code))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return room, nil
}

func (s *InfoService) findBuilding(ctx context.Context, code string) (*models.Building, error) {
	building, err := s.buildings.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("building code %s not found", code))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load building")
	}
	return building, nil
}
