package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/availability"
	"github.com/team7/classroom-informer-api/internal/models"
	"github.com/team7/classroom-informer-api/pkg/export"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type studentTimetableRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.StudentTimetableEntry, error)
}

// ExportRequest names the room and the desired download format.
type ExportRequest struct {
	BuildingCode string
	RoomNumber   string
	Format       string
}

// ExportResult carries rendered bytes plus the response headers to serve them
// with.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// TimetableService serves raw timetable listings and file exports.
type TimetableService struct {
	resolver       roomResolver
	timetable      timetableRepository
	students       studentTimetableRepository
	csvExporter    *export.CSVExporter
	pdfExporter    *export.PDFExporter
	exportsEnabled bool
	logger         *zap.Logger
}

// NewTimetableService instantiates TimetableService.
func NewTimetableService(resolver roomResolver, timetable timetableRepository, students studentTimetableRepository, exportsEnabled bool, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		resolver:       resolver,
		timetable:      timetable,
		students:       students,
		csvExporter:    export.NewCSVExporter(),
		pdfExporter:    export.NewPDFExporter(),
		exportsEnabled: exportsEnabled,
		logger:         logger,
	}
}

// RoomTimetable returns a room's weekly entries as stored.
func (s *TimetableService) RoomTimetable(ctx context.Context, buildingCode, roomNumber string) ([]models.TimetableEntry, error) {
	room, err := s.resolver.ResolveRoom(ctx, buildingCode, roomNumber)
	if err != nil {
		return nil, err
	}

	entries, err := s.timetable.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	return entries, nil
}

// StudentTimetable returns the caller's personal timetable entries.
func (s *TimetableService) StudentTimetable(ctx context.Context, studentID string) ([]models.StudentTimetableEntry, error) {
	entries, err := s.students.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student timetable")
	}
	if entries == nil {
		entries = []models.StudentTimetableEntry{}
	}
	return entries, nil
}

// ExportTimetable renders a room's timetable as a CSV or PDF download.
func (s *TimetableService) ExportTimetable(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if !s.exportsEnabled {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled")
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", req.Format))
	}

	room, err := s.resolver.ResolveRoom(ctx, req.BuildingCode, req.RoomNumber)
	if err != nil {
		return nil, err
	}

	entries, err := s.timetable.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	base := fmt.Sprintf("timetable_%s_%s", room.BuildingCode, room.RoomNumber)
	switch format {
	case "pdf":
		// PDF sticks to ASCII-safe columns; the core fonts have no CJK
		// glyphs.
		data := export.Dataset{Headers: []string{"day", "start", "end", "course_code"}}
		for _, entry := range entries {
			data.Append(exportDayName(entry.Day), entry.StartTime, entry.EndTime, entry.CourseCode)
		}
		content, err := s.pdfExporter.Render(data, fmt.Sprintf("Timetable %s-%s", room.BuildingCode, room.RoomNumber))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	default:
		data := export.Dataset{Headers: []string{"day", "start_time", "end_time", "course_code", "course_name", "instructor"}}
		for _, entry := range entries {
			data.Append(exportDayName(entry.Day), entry.StartTime, entry.EndTime, entry.CourseCode, entry.CourseName, entry.Instructor)
		}
		content, err := s.csvExporter.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: base + ".csv"}, nil
	}
}

// exportDayName maps whatever day label the row carries to the English short
// name, leaving unparseable values as-is.
func exportDayName(raw string) string {
	day, err := availability.ParseWeekday(raw)
	if err != nil {
		return raw
	}
	return day.String()
}
