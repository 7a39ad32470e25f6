package models

// TimetableEntry is a recurring weekly class period occupying a room.
// Day and the time columns stay raw strings here; parsing tolerance lives in
// the availability package. Course metadata is carried for display only and
// plays no part in the availability computation.
type TimetableEntry struct {
	ID         int64  `db:"id" json:"id"`
	RoomID     int64  `db:"room_id" json:"room_id"`
	Day        string `db:"day" json:"day"`
	StartTime  string `db:"start_time" json:"start_time"`
	EndTime    string `db:"end_time" json:"end_time"`
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
	Instructor string `db:"instructor" json:"instructor"`
}

// StudentTimetableEntry is one period of a student's personal timetable.
type StudentTimetableEntry struct {
	ID         int64  `db:"id" json:"id"`
	StudentID  string `db:"student_id" json:"student_id"`
	Day        string `db:"day" json:"day"`
	StartTime  string `db:"start_time" json:"start_time"`
	EndTime    string `db:"end_time" json:"end_time"`
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
	Location   string `db:"location" json:"location"`
}
