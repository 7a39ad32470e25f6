package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

// BuildingRepository provides read access to campus buildings.
type BuildingRepository struct {
	db *sqlx.DB
}

// NewBuildingRepository creates a new building repository.
func NewBuildingRepository(db *sqlx.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// List returns all buildings ordered by code.
func (r *BuildingRepository) List(ctx context.Context) ([]models.Building, error) {
	const query = `SELECT id, code, name, created_at FROM buildings ORDER BY code ASC`
	var buildings []models.Building
	if err := r.db.SelectContext(ctx, &buildings, query); err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	return buildings, nil
}

// FindByCode loads a building by its unique code.
func (r *BuildingRepository) FindByCode(ctx context.Context, code string) (*models.Building, error) {
	const query = `SELECT id, code, name, created_at FROM buildings WHERE code = $1 LIMIT 1`
	var building models.Building
	if err := r.db.GetContext(ctx, &building, query, code); err != nil {
		return nil, err
	}
	return &building, nil
}
