// Package access maps roles to the dashboard areas they may see and turns
// profile lookups into render-or-redirect decisions.
package access

import (
	"net/url"
	"path"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
)

const (
	RootPath      = "/"
	LoginPath     = "/login"
	SignupPath    = "/signup"
	DashboardPath = "/dashboard"
	ProfilePath   = "/dashboard/profile"
)

// DashboardFor returns the home path of role. Unknown roles fall back to the
// client dashboard.
func DashboardFor(role models.Role) string {
	switch role {
	case models.RoleClient:
		return "/dashboard/client"
	case models.RoleAdmin:
		return "/dashboard/admin"
	case models.RoleDesigner:
		return "/dashboard/designer"
	case models.RoleMarketer:
		return "/dashboard/marketer"
	}
	return "/dashboard/client"
}

// DefaultRedirect returns where a viewer holding role should land. The empty
// role means no profile is known and sends the viewer to the login page.
func DefaultRedirect(role models.Role) string {
	if role == "" {
		return LoginPath
	}
	return DashboardFor(role)
}

// CanAccessPath reports whether role may view p. Admins may view every path;
// other roles may view their own dashboard area and the shared profile page.
// p is cleaned first, so dot segments cannot climb out of the role's area,
// and matching is per segment (see IsUnder) rather than by raw prefix.
func CanAccessPath(role models.Role, p string) bool {
	if role == models.RoleAdmin {
		return true
	}
	p = cleanPath(p)
	if IsUnder(p, DashboardFor(role)) {
		return true
	}
	return IsUnder(p, ProfilePath)
}

// IsUnder reports whether p equals base or lies below it, comparing whole
// path segments. This is deliberately stricter than a string prefix test:
// "/dashboard/clientele" is not under "/dashboard/client". Callers pass
// cleaned paths.
func IsUnder(p, base string) bool {
	if p == base {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(base, "/")+"/")
}

// SafeNext returns next when role may visit it, else the role's dashboard.
// Only same-site absolute paths are honored.
func SafeNext(role models.Role, next string) string {
	u, err := url.Parse(next)
	if next == "" || err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(next, "//") {
		return DefaultRedirect(role)
	}
	if !IsUnder(cleanPath(u.Path), DashboardPath) || !CanAccessPath(role, u.Path) {
		return DefaultRedirect(role)
	}
	return u.RequestURI()
}

func cleanPath(p string) string {
	if p == "" {
		return RootPath
	}
	return path.Clean("/" + p)
}
