package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/team7/classroom-informer-api/internal/service"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
	"github.com/team7/classroom-informer-api/pkg/response"
)

// ToggleFavoriteRequest is the toggle payload.
type ToggleFavoriteRequest struct {
	RoomID int64 `json:"room_id" binding:"required,gt=0"`
}

// FavoriteHandler exposes the favorites endpoints.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// NewFavoriteHandler constructs FavoriteHandler.
func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// Toggle godoc
// @Summary Toggle a favorite room
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body ToggleFavoriteRequest true "Room to toggle"
// @Success 200 {object} response.Envelope
// @Router /favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "room_id is required and must be positive"))
		return
	}

	result, err := h.favorites.Toggle(c.Request.Context(), claims.UserID(), req.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// List godoc
// @Summary List favorite rooms
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), claims.UserID())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, favorites)
}
