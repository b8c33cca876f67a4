package middleware

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := SessionUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequireAuthPage is RequireAuth for pages: anonymous viewers are redirected
// to the login page.
func RequireAuthPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := SessionUserID(c)
		if d := access.RequireAuth(ok); !d.Allowed() {
			apply(c, d)
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// SessionUserID reads the authenticated user from the session cookie.
func SessionUserID(c *gin.Context) (string, bool) {
	id, ok := sessions.Default(c).Get(constants.ContextKeyUserID).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// apply performs a guard decision that denied rendering.
func apply(c *gin.Context, d access.Decision) {
	c.Redirect(http.StatusFound, d.Location)
	c.Abort()
}
