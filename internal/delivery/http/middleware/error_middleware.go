package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/logger"
)

// ErrorHandler converts errors attached to the context into the JSON
// envelope. Typed AppErrors keep their status and message; anything
// else is logged server-side and surfaced as a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled request error",
			"path", c.FullPath(), "method", c.Request.Method, "error", err)
		response.Error(c, http.StatusInternalServerError,
			"An unexpected error occurred. Please try again later.", nil)
	}
}
