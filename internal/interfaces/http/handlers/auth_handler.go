package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/interfaces/http/response"
	"growcore.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	dispatcher  *usecases.Dispatcher
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, dispatcher *usecases.Dispatcher) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		dispatcher:  dispatcher,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, evts, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dispatcher.Publish(c.Request.Context(), evts...)

	response.Success(c, http.StatusCreated, auth)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// VerifyEmail handles email verification
// POST /api/v1/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	evts, err := h.authUsecase.VerifyEmail(c.Request.Context(), input.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dispatcher.Publish(c.Request.Context(), evts...)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}
