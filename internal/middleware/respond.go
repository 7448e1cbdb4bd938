package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "spendly/internal/errors"
)

// abortWithError stops the chain with the standard error body.
func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": appErr.Detail(),
		"code":  appErr.Code,
	})
}
