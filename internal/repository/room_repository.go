package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

const roomColumns = `r.id, r.building_id, r.room_number, r.capacity, b.code AS building_code, b.name AS building_name`

// RoomRepository provides read access to classrooms with their building
// attributes flattened in.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List returns all rooms joined with their buildings.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms r JOIN buildings b ON b.id = r.building_id ORDER BY b.code ASC, r.room_number ASC`, roomColumns)
	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// ListByBuilding returns the rooms of one building ordered by room number.
func (r *RoomRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms r JOIN buildings b ON b.id = r.building_id WHERE r.building_id = $1 ORDER BY r.room_number ASC`, roomColumns)
	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query, buildingID); err != nil {
		return nil, fmt.Errorf("list rooms by building: %w", err)
	}
	return rooms, nil
}

// FindByID loads a room by surrogate id.
func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms r JOIN buildings b ON b.id = r.building_id WHERE r.id = $1 LIMIT 1`, roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByNumber loads a room by its building and room number.
func (r *RoomRepository) FindByNumber(ctx context.Context, buildingID int64, roomNumber string) (*models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms r JOIN buildings b ON b.id = r.building_id WHERE r.building_id = $1 AND r.room_number = $2 LIMIT 1`, roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, buildingID, roomNumber); err != nil {
		return nil, err
	}
	return &room, nil
}
