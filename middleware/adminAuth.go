package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zipsea/models"
	"zipsea/utils"
)

// JWTAuthAdminMiddleware admits requests carrying a valid admin bearer token.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := utils.AdminSubject(tokenString)
		if err != nil {
			abortUnauthorized(c, "Unauthorized admin access")
			return
		}

		c.Set("adminID", sub)
		c.Set("isAdmin", true)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Envelope[any]{
		Error: &models.EnvelopeError{Message: msg},
	})
}
