package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

// ReservationRepository reads ad-hoc room reservations. Only confirmed
// reservations matter to availability, so the queries filter on status here.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ListConfirmedAt returns confirmed reservations covering the instant,
// half-open: a reservation ending exactly at the instant does not cover it.
func (r *ReservationRepository) ListConfirmedAt(ctx context.Context, roomID int64, at time.Time) ([]models.Reservation, error) {
	const query = `SELECT id, room_id, user_id, start_at, end_at, status FROM reservations WHERE room_id = $1 AND status = $2 AND start_at <= $3 AND end_at > $3`
	var reservations []models.Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, roomID, models.ReservationConfirmed, at); err != nil {
		return nil, fmt.Errorf("list confirmed reservations at instant: %w", err)
	}
	return reservations, nil
}

// ListConfirmedOverlapping returns confirmed reservations overlapping the
// [from, to) window.
func (r *ReservationRepository) ListConfirmedOverlapping(ctx context.Context, roomID int64, from, to time.Time) ([]models.Reservation, error) {
	const query = `SELECT id, room_id, user_id, start_at, end_at, status FROM reservations WHERE room_id = $1 AND status = $2 AND start_at < $4 AND end_at > $3 ORDER BY start_at ASC`
	var reservations []models.Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, roomID, models.ReservationConfirmed, from, to); err != nil {
		return nil, fmt.Errorf("list confirmed reservations in window: %w", err)
	}
	return reservations, nil
}
