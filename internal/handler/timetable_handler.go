package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/team7/classroom-informer-api/internal/service"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
	"github.com/team7/classroom-informer-api/pkg/response"
)

// TimetableHandler exposes room and student timetable endpoints.
type TimetableHandler struct {
	timetables *service.TimetableService
}

// NewTimetableHandler constructs TimetableHandler.
func NewTimetableHandler(timetables *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables}
}

// RoomTimetable godoc
// @Summary Weekly timetable of a room
// @Tags Timetable
// @Produce json
// @Param building_code query string true "Building code"
// @Param room_number query string true "Room number"
// @Success 200 {object} response.Envelope
// @Router /info/room/timetable [get]
func (h *TimetableHandler) RoomTimetable(c *gin.Context) {
	buildingCode := c.Query("building_code")
	roomNumber := c.Query("room_number")
	if buildingCode == "" || roomNumber == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "building_code and room_number are required"))
		return
	}

	entries, err := h.timetables.RoomTimetable(c.Request.Context(), buildingCode, roomNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Export godoc
// @Summary Download a room timetable as CSV or PDF
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param building_code query string true "Building code"
// @Param room_number query string true "Room number"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /info/room/timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	req := service.ExportRequest{
		BuildingCode: c.Query("building_code"),
		RoomNumber:   c.Query("room_number"),
		Format:       c.Query("format"),
	}
	if req.BuildingCode == "" || req.RoomNumber == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "building_code and room_number are required"))
		return
	}

	result, err := h.timetables.ExportTimetable(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// StudentTimetable godoc
// @Summary Personal timetable of the authenticated student
// @Tags Timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) StudentTimetable(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entries, err := h.timetables.StudentTimetable(c.Request.Context(), claims.UserID())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
