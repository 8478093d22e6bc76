package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
	"growcore.backend/pkg/utils"
)

const defaultProjectPageSize = 20

// ProjectHandler handles project and application endpoints
type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
	dispatcher     *usecases.Dispatcher
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase *usecases.ProjectUsecase, dispatcher *usecases.Dispatcher) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
		dispatcher:     dispatcher,
	}
}

// List returns active projects with the caller's application state
// GET /api/v1/projects?category=&page=&limit=
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultProjectPageSize)))
	params := utils.GetPaginationParams(page, limit)

	projects, total, err := h.projectUsecase.ListActiveProjects(
		c.Request.Context(), c.Query("category"), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"projects":   projects,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns one active project
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	project, err := h.projectUsecase.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Apply creates an application for the authenticated user
// POST /api/v1/projects/:id/apply
func (h *ProjectHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	app, evts, err := h.projectUsecase.Apply(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dispatcher.Publish(c.Request.Context(), evts...)

	response.Success(c, http.StatusCreated, app)
}

// CanApply reports whether the user could apply right now
// GET /api/v1/projects/:id/can-apply
func (h *ProjectHandler) CanApply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"canApply": h.projectUsecase.CanApply(c.Request.Context(), userID, projectID),
	})
}

// Stats returns application counts for a project
// GET /api/v1/projects/:id/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	stats, err := h.projectUsecase.GetProjectStats(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// MyApplications lists the user's applications, optionally filtered by status
// GET /api/v1/projects/my-applications?status=
func (h *ProjectHandler) MyApplications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	status := c.Query("status")
	if status == "" {
		apps, err := h.projectUsecase.GetUserApplications(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, apps)
		return
	}

	appStatus := entities.ApplicationStatus(status)
	if !appStatus.Valid() {
		response.Error(c, domainerrors.BadRequest("invalid application status"))
		return
	}

	apps, err := h.projectUsecase.GetUserApplicationsByStatus(c.Request.Context(), userID, appStatus)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// UpdateApplicationStatus moves an application through the state machine
// PUT /api/v1/applications/:id/status
func (h *ProjectHandler) UpdateApplicationStatus(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	next := entities.ApplicationStatus(input.Status)
	if !next.Valid() {
		response.Error(c, domainerrors.BadRequest("invalid application status"))
		return
	}

	if err := h.projectUsecase.UpdateApplicationStatus(c.Request.Context(), applicationID, next); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Application status updated",
	})
}
