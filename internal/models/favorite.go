package models

import "time"

// Favorite associates a user with a room. The (user_id, room_id) pair is
// unique; toggling creates or removes it.
type Favorite struct {
	UserID    string    `db:"user_id" json:"user_id"`
	RoomID    int64     `db:"room_id" json:"room_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FavoriteRoom is a favorite joined with the room and building it points at.
type FavoriteRoom struct {
	UserID       string    `db:"user_id" json:"user_id"`
	RoomID       int64     `db:"room_id" json:"room_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	RoomNumber   string    `db:"room_number" json:"room_number"`
	BuildingCode string    `db:"building_code" json:"building_code"`
}
