package models

import "time"

// ReservationStatus enumerates the reservation lifecycle. Only confirmed
// reservations occupy a room.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is an ad-hoc booking with absolute timestamps, unlike the
// weekly recurring timetable entries.
type Reservation struct {
	ID      string            `db:"id" json:"id"`
	RoomID  int64             `db:"room_id" json:"room_id"`
	UserID  string            `db:"user_id" json:"user_id"`
	StartAt time.Time         `db:"start_at" json:"start_at"`
	EndAt   time.Time         `db:"end_at" json:"end_at"`
	Status  ReservationStatus `db:"status" json:"status"`
}
