package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/team7/classroom-informer-api/internal/models"
)

// StudentTimetableRepository reads a student's personal timetable.
type StudentTimetableRepository struct {
	db *sqlx.DB
}

// NewStudentTimetableRepository creates a new student timetable repository.
func NewStudentTimetableRepository(db *sqlx.DB) *StudentTimetableRepository {
	return &StudentTimetableRepository{db: db}
}

// ListByStudent returns the student's periods ordered by day and start time.
func (r *StudentTimetableRepository) ListByStudent(ctx context.Context, studentID string) ([]models.StudentTimetableEntry, error) {
	const query = `SELECT id, student_id, day, start_time, end_time, course_code, course_name, location FROM student_timetable WHERE student_id = $1 ORDER BY day ASC, start_time ASC`
	var entries []models.StudentTimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, studentID); err != nil {
		return nil, fmt.Errorf("list student timetable: %w", err)
	}
	return entries, nil
}
