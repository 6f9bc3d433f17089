package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zipsea/utils"
)

// HealthHandler reports the last dependency health snapshot. It answers 503
// when any dependency was down at the last check.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if !healthy(status) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
}

func healthy(s utils.HealthStatus) bool {
	if s.CheckedAt.IsZero() {
		return true
	}
	if !s.Mongo {
		return false
	}
	for _, ok := range s.Redis {
		if !ok {
			return false
		}
	}
	return true
}
