package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
)

// CertificationHandler handles certification endpoints
type CertificationHandler struct {
	certUsecase *usecases.CertificationUsecase
}

// NewCertificationHandler creates a new certification handler
func NewCertificationHandler(certUsecase *usecases.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{certUsecase: certUsecase}
}

// List returns the user's certifications, newest first
// GET /api/v1/certifications
func (h *CertificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	certs, err := h.certUsecase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, certs)
}
