package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
	"growcore.backend/pkg/utils"
)

const defaultNotificationPageSize = 20

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notifUsecase: notifUsecase}
}

// List returns the user's notifications, newest first
// GET /api/v1/notifications?page=&limit=
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNotificationPageSize)))
	params := utils.GetPaginationParams(page, limit)

	notifs, err := h.notifUsecase.List(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notifs)
}

// UnreadCount returns the number of unread notifications
// GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	count, err := h.notifUsecase.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// MarkRead marks one notification as read
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid notification id"))
		return
	}

	if err := h.notifUsecase.MarkRead(c.Request.Context(), notifID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}
