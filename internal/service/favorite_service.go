package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/dto"
	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type favoriteRepository interface {
	Find(ctx context.Context, userID string, roomID int64) (*models.Favorite, error)
	Create(ctx context.Context, userID string, roomID int64) error
	Delete(ctx context.Context, userID string, roomID int64) error
	ListWithRooms(ctx context.Context, userID string) ([]models.FavoriteRoom, error)
}

// FavoriteService toggles and lists a user's favorite rooms.
type FavoriteService struct {
	favorites favoriteRepository
	rooms     roomRepository
	logger    *zap.Logger
}

// NewFavoriteService instantiates FavoriteService.
func NewFavoriteService(favorites favoriteRepository, rooms roomRepository, logger *zap.Logger) *FavoriteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoriteService{favorites: favorites, rooms: rooms, logger: logger}
}

// Toggle flips the favorite state of (userID, roomID). The room must exist;
// the result tells the client which way the toggle went.
func (s *FavoriteService) Toggle(ctx context.Context, userID string, roomID int64) (*dto.ToggleFavoriteResult, error) {
	if roomID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "room_id must be positive")
	}

	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("room id %d not found", roomID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}

	_, err := s.favorites.Find(ctx, userID, roomID)
	switch {
	case err == nil:
		if err := s.favorites.Delete(ctx, userID, roomID); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove favorite")
		}
		return &dto.ToggleFavoriteResult{Status: "removed", Message: "Favorites removed"}, nil
	case errors.Is(err, sql.ErrNoRows):
		if err := s.favorites.Create(ctx, userID, roomID); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add favorite")
		}
		return &dto.ToggleFavoriteResult{Status: "added", Message: "Favorites added"}, nil
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load favorite")
	}
}

// List returns the user's favorites with room detail, ordered by room id.
// A user with no favorites gets an empty list, not an error.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := s.favorites.ListWithRooms(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list favorites")
	}

	result := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		result = append(result, dto.FavoriteResponse{
			UserID:    fav.UserID,
			RoomID:    fav.RoomID,
			CreatedAt: fav.CreatedAt,
			Room: &dto.RoomDetail{
				ID:           fav.RoomID,
				RoomNumber:   fav.RoomNumber,
				BuildingCode: fav.BuildingCode,
			},
		})
	}
	return result, nil
}
