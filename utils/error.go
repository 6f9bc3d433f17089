package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/models"
)

// ErrorHandler is a middleware that catches panics and returns a structured error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.Envelope[any]{
					Error: &models.EnvelopeError{
						Message: "Internal Server Error",
						Details: "An unexpected error occurred. Please try again later.",
					},
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a failed envelope and aborts the chain.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("details", details),
		zap.String("path", c.Request.URL.Path),
	)
	c.AbortWithStatusJSON(status, models.Envelope[any]{
		Error: &models.EnvelopeError{Message: message, Details: details},
	})
}

// JSONSuccess wraps data in a successful envelope.
func JSONSuccess[T any](c *gin.Context, status int, data T) {
	c.JSON(status, models.Envelope[T]{Success: true, Data: data})
}
