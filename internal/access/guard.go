package access

import "github.com/fazla-cloud/thunder-agency-platform/internal/models"

// Outcome is what a page should do after a guard check.
type Outcome int

const (
	// Render lets the page render.
	Render Outcome = iota
	// RedirectLogin sends the viewer to the login page.
	RedirectLogin
	// Redirect sends the viewer to Decision.Location.
	Redirect
)

// Decision is the result of a guard check. Applying it (writing a redirect,
// rendering) is left to the caller.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Allowed reports whether the page may render.
func (d Decision) Allowed() bool {
	return d.Outcome == Render
}

func render() Decision {
	return Decision{Outcome: Render}
}

func toLogin() Decision {
	return Decision{Outcome: RedirectLogin, Location: LoginPath}
}

func redirectTo(location string) Decision {
	return Decision{Outcome: Redirect, Location: location}
}

// RequireAuth lets any authenticated viewer through.
func RequireAuth(authenticated bool) Decision {
	if !authenticated {
		return toLogin()
	}
	return render()
}

// RequireRole lets profile through only when it holds role. A missing profile
// goes to the login page; a wrong role goes to that profile's own dashboard.
func RequireRole(profile *models.Profile, role models.Role) Decision {
	if profile == nil {
		return toLogin()
	}
	if profile.Role != role {
		return redirectTo(DefaultRedirect(profile.Role))
	}
	return render()
}

// RequireAnyRole lets profile through when it holds one of roles. A missing
// profile goes to the login page; any other mismatch goes to the client
// dashboard regardless of the viewer's own role.
func RequireAnyRole(profile *models.Profile, roles ...models.Role) Decision {
	if profile == nil {
		return toLogin()
	}
	for _, role := range roles {
		if profile.Role == role {
			return render()
		}
	}
	return redirectTo(DashboardFor(models.RoleClient))
}
