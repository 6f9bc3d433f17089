package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/utils"
)

// getLogger retrieves the request-scoped logger set by the request logger
// middleware, falling back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
