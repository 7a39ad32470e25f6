package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/team7/classroom-informer-api/internal/middleware"
	"github.com/team7/classroom-informer-api/internal/service"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
	"github.com/team7/classroom-informer-api/pkg/response"
)

// InfoHandler exposes building, room and availability lookups.
type InfoHandler struct {
	info         *service.InfoService
	availability *service.AvailabilityService
}

// NewInfoHandler constructs InfoHandler.
func NewInfoHandler(info *service.InfoService, availability *service.AvailabilityService) *InfoHandler {
	return &InfoHandler{info: info, availability: availability}
}

// Buildings godoc
// @Summary List buildings
// @Tags Info
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /info/buildings [get]
func (h *InfoHandler) Buildings(c *gin.Context) {
	buildings, err := h.info.Buildings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, buildings)
}

// Rooms godoc
// @Summary List rooms
// @Tags Info
// @Produce json
// @Param building_code query string false "Filter by building code"
// @Success 200 {object} response.Envelope
// @Router /info/rooms [get]
func (h *InfoHandler) Rooms(c *gin.Context) {
	rooms, err := h.info.Rooms(c.Request.Context(), c.Query("building_code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// RoomDetails godoc
// @Summary Get room details
// @Tags Info
// @Produce json
// @Param room_id query int false "Room id"
// @Param building_code query string false "Building code"
// @Param room_number query string false "Room number"
// @Success 200 {object} response.Envelope
// @Router /info/room/details [get]
func (h *InfoHandler) RoomDetails(c *gin.Context) {
	query := service.RoomQuery{
		BuildingCode: c.Query("building_code"),
		RoomNumber:   c.Query("room_number"),
	}
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "room_id must be a positive integer"))
			return
		}
		query.RoomID = id
	}

	room, err := h.info.RoomDetails(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room)
}

// FreeSlots godoc
// @Summary Free slots of a room per class day
// @Tags Info
// @Produce json
// @Param building_code query string true "Building code"
// @Param room_number query string true "Room number"
// @Param start_time query string false "Window start (HH:MM)"
// @Param end_time query string false "Window end (HH:MM)"
// @Success 200 {object} response.Envelope
// @Router /info/room/timetable/free-slots [get]
func (h *InfoHandler) FreeSlots(c *gin.Context) {
	req := service.FreeSlotsRequest{
		BuildingCode: c.Query("building_code"),
		RoomNumber:   c.Query("room_number"),
		StartTime:    c.Query("start_time"),
		EndTime:      c.Query("end_time"),
	}
	if req.BuildingCode == "" || req.RoomNumber == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "building_code and room_number are required"))
		return
	}

	resp, cached, err := h.availability.FreeSlotsByDay(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cached)
	response.JSON(c, http.StatusOK, resp, middleware.ExtractMeta(c))
}

// AvailableRooms godoc
// @Summary Rooms free during every requested slot
// @Tags Info
// @Produce json
// @Param building_code query string true "Building code"
// @Param slots query []string true "Slots as HH:MM-HH:MM, repeatable or comma separated"
// @Param room_number query string false "Narrow to one room"
// @Success 200 {object} response.Envelope
// @Router /info/rooms/available [get]
func (h *InfoHandler) AvailableRooms(c *gin.Context) {
	req := service.AvailableRoomsRequest{
		BuildingCode: c.Query("building_code"),
		RoomNumber:   c.Query("room_number"),
		Slots:        splitSlots(c.QueryArray("slots")),
	}
	if req.BuildingCode == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "building_code is required"))
		return
	}

	rooms, err := h.availability.AvailableRooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// splitSlots accepts both repeated slots params and a single comma separated
// value.
func splitSlots(raw []string) []string {
	slots := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				slots = append(slots, part)
			}
		}
	}
	return slots
}
