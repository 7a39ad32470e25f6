package dto

import "time"

// RoomDetail is the flattened room info attached to a favorite.
type RoomDetail struct {
	ID           int64  `json:"id"`
	RoomNumber   string `json:"room_number"`
	BuildingCode string `json:"building_code"`
}

// FavoriteResponse is one favorite with its room detail.
type FavoriteResponse struct {
	UserID    string      `json:"user_id"`
	RoomID    int64       `json:"room_id"`
	CreatedAt time.Time   `json:"created_at"`
	Room      *RoomDetail `json:"room"`
}

// ToggleFavoriteResult reports whether the toggle added or removed the pair.
type ToggleFavoriteResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
