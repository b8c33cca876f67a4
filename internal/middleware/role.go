package middleware

import (
	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole lets a page render only for viewers holding role. It must run
// after LoadProfile.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, _ := GetProfile(c)
		if d := access.RequireRole(profile, role); !d.Allowed() {
			apply(c, d)
			return
		}
		c.Next()
	}
}

// RequireAnyRole lets a page render for viewers holding any of roles.
func RequireAnyRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, _ := GetProfile(c)
		if d := access.RequireAnyRole(profile, roles...); !d.Allowed() {
			apply(c, d)
			return
		}
		c.Next()
	}
}

// RequireRoleAPI rejects API callers holding none of roles with 403. It must
// run after LoadProfileAPI.
func RequireRoleAPI(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := GetProfile(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !access.RequireAnyRole(profile, roles...).Allowed() {
			apierrors.Forbidden(c, "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
