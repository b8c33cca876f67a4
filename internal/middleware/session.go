package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// PathnameHeader carries the requested dashboard path to downstream handlers.
const PathnameHeader = "X-Pathname"

// SessionRefresh runs in front of every route. It redirects anonymous
// dashboard requests to the login page, slides the session cookie's expiry
// for signed-in viewers and tags their dashboard requests with the path.
func SessionRefresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, authenticated := SessionUserID(c)

		d := access.Edge(c.Request.URL, authenticated)
		if d.Location != "" {
			c.Redirect(http.StatusFound, d.Location)
			c.Abort()
			return
		}

		if authenticated {
			session := sessions.Default(c)
			session.Set(constants.SessionRefreshedAt, time.Now().Unix())
			if err := session.Save(); err != nil {
				slog.Warn("failed to refresh session", "error", err)
			}
		}
		if d.TagPathname {
			c.Request.Header.Set(PathnameHeader, c.Request.URL.Path)
		}

		c.Next()
	}
}
