package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
)

// DashboardHandler handles the dashboard summary endpoint
type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Summary returns the user's aggregated activity
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	summary, err := h.dashboardUsecase.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
