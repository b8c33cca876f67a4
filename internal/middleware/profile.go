package middleware

import (
	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/gin-gonic/gin"
)

// ProfileResolver looks up the profile of an authenticated user.
type ProfileResolver interface {
	Resolve(userID string) (*models.Profile, bool)
}

// LoadProfile is the dashboard layout gate: it resolves the viewer's profile
// and redirects to the login page when there is none. Deactivated profiles
// are treated as missing.
func LoadProfile(resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := GetUserID(c)
		profile, ok := resolver.Resolve(userID)
		if !ok || !profile.IsActive {
			apply(c, access.RequireRole(nil, ""))
			return
		}

		c.Set(constants.ContextKeyProfile, profile)
		c.Next()
	}
}

// LoadProfileAPI resolves the caller's profile for API routes.
func LoadProfileAPI(resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := GetUserID(c)
		profile, ok := resolver.Resolve(userID)
		if !ok {
			apierrors.Unauthorized(c, "Profile not found")
			c.Abort()
			return
		}
		if !profile.IsActive {
			apierrors.AccountDisabled(c)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProfile, profile)
		c.Next()
	}
}

// GetProfile retrieves the viewer's profile from context
func GetProfile(c *gin.Context) (*models.Profile, bool) {
	v, exists := c.Get(constants.ContextKeyProfile)
	if !exists {
		return nil, false
	}
	profile, ok := v.(*models.Profile)
	return profile, ok && profile != nil
}
