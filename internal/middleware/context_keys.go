package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the
// request context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	if !ok || !role.IsValid() {
		return "", false
	}
	return role, true
}

// RequireRole gates a route on the authenticated user's role. It must run
// after AuthMiddleware. domain.CheckRole decides satisfaction, so CA passes
// every gate.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
			return
		}
		if !domain.CheckRole(role, required) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role check failed",
				"role", string(role), "required", string(required))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Insufficient permissions"))
			return
		}
		c.Next()
	}
}
