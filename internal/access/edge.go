package access

import "net/url"

// RedirectedParam marks login redirects issued by the edge gate.
const RedirectedParam = "redirected"

// EdgeDecision is the per-request verdict of the session gate.
type EdgeDecision struct {
	// Location is non-empty when the request must be redirected.
	Location string
	// TagPathname asks the caller to forward the request path to downstream
	// handlers.
	TagPathname bool
}

// Edge decides what to do with a request for u given whether the session
// carries an authenticated user. Unauthenticated dashboard requests are sent
// to the login page with the original query kept and redirected=true added.
func Edge(u *url.URL, authenticated bool) EdgeDecision {
	p := cleanPath(u.Path)
	onDashboard := IsUnder(p, DashboardPath)

	if !authenticated && onDashboard && !IsUnder(p, LoginPath) {
		query := u.Query()
		if !query.Has(RedirectedParam) {
			query.Set(RedirectedParam, "true")
		}
		target := url.URL{Path: LoginPath, RawQuery: query.Encode()}
		return EdgeDecision{Location: target.String()}
	}

	return EdgeDecision{TagPathname: authenticated && onDashboard}
}
