package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

// FavoriteRepository manages the (user, room) favorite associations.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Find loads one favorite pair; sql.ErrNoRows when absent.
func (r *FavoriteRepository) Find(ctx context.Context, userID string, roomID int64) (*models.Favorite, error) {
	const query = `SELECT user_id, room_id, created_at FROM favorites WHERE user_id = $1 AND room_id = $2 LIMIT 1`
	var favorite models.Favorite
	if err := r.db.GetContext(ctx, &favorite, query, userID, roomID); err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Create stores a favorite pair.
func (r *FavoriteRepository) Create(ctx context.Context, userID string, roomID int64) error {
	const query = `INSERT INTO favorites (user_id, room_id, created_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, userID, roomID, time.Now().UTC()); err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

// Delete removes a favorite pair.
func (r *FavoriteRepository) Delete(ctx context.Context, userID string, roomID int64) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND room_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, roomID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// ListWithRooms returns the user's favorites joined with room and building
// attributes, ordered by room id for deterministic output.
func (r *FavoriteRepository) ListWithRooms(ctx context.Context, userID string) ([]models.FavoriteRoom, error) {
	const query = `SELECT f.user_id, f.room_id, f.created_at, r.room_number, b.code AS building_code FROM favorites f JOIN rooms r ON r.id = f.room_id JOIN buildings b ON b.id = r.building_id WHERE f.user_id = $1 ORDER BY f.room_id ASC`
	var favorites []models.FavoriteRoom
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
