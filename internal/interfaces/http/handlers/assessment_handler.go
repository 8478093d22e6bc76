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

// AssessmentHandler handles assessment endpoints
type AssessmentHandler struct {
	assessmentUsecase *usecases.AssessmentUsecase
	dispatcher        *usecases.Dispatcher
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentUsecase *usecases.AssessmentUsecase, dispatcher *usecases.Dispatcher) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUsecase: assessmentUsecase,
		dispatcher:        dispatcher,
	}
}

// Get returns one assessment with questions redacted
// GET /api/v1/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid assessment id"))
		return
	}

	assessment, err := h.assessmentUsecase.GetByID(c.Request.Context(), assessmentID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, assessment)
}

// ListByProject returns a project's assessments with completion state
// GET /api/v1/assessments/project/:projectId
func (h *AssessmentHandler) ListByProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	assessments, err := h.assessmentUsecase.ListByProject(c.Request.Context(), projectID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, assessments)
}

// Submit scores the caller's answers and records the submission
// POST /api/v1/assessments/:id/submit
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid assessment id"))
		return
	}

	var input entities.SubmitAssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, evts, err := h.assessmentUsecase.Submit(c.Request.Context(), userID, assessmentID, input.Answers)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dispatcher.Publish(c.Request.Context(), evts...)

	response.Success(c, http.StatusOK, result)
}
