package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyApplied       = errors.New("already applied to this project")
	ErrAlreadyCompleted     = errors.New("assessment already completed")
	ErrProjectNotActive     = errors.New("project is not active")
	ErrProfileIncomplete    = errors.New("profile is not complete")
	ErrInvalidTransition    = errors.New("invalid application status transition")
	ErrMalformedDefinition  = errors.New("malformed assessment definition")
	ErrValidation           = errors.New("validation failed")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrTokenExpired         = errors.New("token expired")
	ErrUpstreamTimeout      = errors.New("upstream timed out")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
)

// AppError carries an HTTP status alongside a domain error
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

func PreconditionFailed(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, err)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func UpstreamTimeout(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, ErrUpstreamTimeout)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// StatusFor maps a domain error to its HTTP status. Errors outside the
// taxonomy map to 500.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyApplied), errors.Is(err, ErrAlreadyCompleted), errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrProjectNotActive), errors.Is(err, ErrProfileIncomplete), errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
