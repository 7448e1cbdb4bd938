package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spendly/internal/errors"
	"spendly/internal/middleware"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error" example:"User ID is required"`
	Code  string `json:"code" example:"USER_ID_REQUIRED"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError records err on the context and aborts the chain.
// middleware.ErrorHandler renders it as `{"error": ..., "code": ...}`.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes the request body into req. A body that is not valid JSON
// is returned as err. Field validation failures are returned separately as
// invalid so callers can run their own precondition checks first. An empty
// body decodes to the zero value.
func bindJSON(c *gin.Context, req interface{}) (invalid error, err error) {
	bindErr := c.ShouldBindJSON(req)
	if bindErr == nil || errors.Is(bindErr, io.EOF) {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if errors.As(bindErr, &verrs) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, bindErr.Error()), nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body: "+bindErr.Error())
}

// resolveUserID decides which user a sync request acts for. Without a
// session the claimed id is trusted. With a session the claimed id may be
// omitted, but must match the session when given.
func resolveUserID(c *gin.Context, claimed string) (string, error) {
	session, ok := middleware.SessionUserID(c)
	if !ok {
		if claimed == "" {
			return "", apperrors.ErrUserIDRequired
		}
		return claimed, nil
	}
	if claimed != "" && claimed != session {
		return "", apperrors.WithMessage(apperrors.ErrForbidden, "User ID does not match the authenticated session")
	}
	return session, nil
}
