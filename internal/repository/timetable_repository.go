package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

// TimetableRepository reads recurring weekly class periods.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates a new timetable repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// ListByRoom returns all timetable entries of a room ordered by day and
// start time.
func (r *TimetableRepository) ListByRoom(ctx context.Context, roomID int64) ([]models.TimetableEntry, error) {
	const query = `SELECT id, room_id, day, start_time, end_time, course_code, course_name, instructor FROM timetable_entries WHERE room_id = $1 ORDER BY day ASC, start_time ASC`
	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, roomID); err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}
