package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manzp111/smartville/internal/domain/policy"
)

// RequireAuthenticated aborts requests whose actor carries no identity
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetActor(c).Authenticated() {
			abortDenied(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests from non-admin actors
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !actor.Authenticated() {
			abortDenied(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if actor.Role != policy.RoleAdmin {
			abortDenied(c, http.StatusForbidden, "PERMISSION_DENIED", "Admin access required")
			return
		}
		c.Next()
	}
}

func abortDenied(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
