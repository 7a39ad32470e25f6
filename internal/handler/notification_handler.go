package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/team7/classroom-informer-api/internal/service"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
	"github.com/team7/classroom-informer-api/pkg/response"
)

// NotificationHandler exposes the favorites availability check.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// CheckAvailability godoc
// @Summary Check which favorite rooms are about to become free
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CheckAvailabilityRequest false "Look-ahead in minutes"
// @Success 200 {object} response.Envelope
// @Router /notifications/check-availability [post]
func (h *NotificationHandler) CheckAvailability(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	// An empty body means "use the default look-ahead".
	var req service.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.notifications.CheckFavorites(c.Request.Context(), claims.UserID(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
