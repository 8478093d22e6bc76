package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
)

// WorkSessionHandler handles work session endpoints
type WorkSessionHandler struct {
	sessionUsecase *usecases.WorkSessionUsecase
}

// NewWorkSessionHandler creates a new work session handler
func NewWorkSessionHandler(sessionUsecase *usecases.WorkSessionUsecase) *WorkSessionHandler {
	return &WorkSessionHandler{sessionUsecase: sessionUsecase}
}

// Start opens a work session against an accepted project
// POST /api/v1/work-sessions/start
func (h *WorkSessionHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.StartWorkSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	session, err := h.sessionUsecase.Start(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, session)
}

// End closes a running work session
// PUT /api/v1/work-sessions/:id/end
func (h *WorkSessionHandler) End(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid session id"))
		return
	}

	session, err := h.sessionUsecase.End(c.Request.Context(), sessionID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}
