package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "growcore.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain errors map to their HTTP status;
// anything outside the taxonomy becomes a 500 with a generic message so
// internals never leak to callers.
func Error(c *gin.Context, err error) {
	status := domainerrors.StatusFor(err)

	message := err.Error()
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}
