package domain

// Route pairs a navigable page path with the role set allowed to view it.
// A nil Allowed set marks a public page; an empty-but-non-nil set would mean
// "any authenticated user", though no current page uses that form.
type Route struct {
	Path    string
	Allowed []string
}

// Public reports whether the page renders without a session.
func (r Route) Public() bool {
	return r.Allowed == nil
}

// PageRoutes is the single declarative table of portal pages. The route guard
// consumes this table; no page re-implements its own role check.
func PageRoutes() []Route {
	return []Route{
		{Path: "/", Allowed: nil},
		{Path: "/login", Allowed: nil},
		{Path: "/signup", Allowed: nil},
		{Path: "/contact", Allowed: nil},
		{Path: "/about", Allowed: nil},
		{Path: "/fleet", Allowed: nil},
		{Path: "/search-results", Allowed: nil},

		{Path: "/admin", Allowed: []string{RoleAdmin}},
		{Path: "/agent-dashboard", Allowed: []string{RoleAgent}},
		{Path: "/agent-inventory", Allowed: []string{RoleAgent}},
		{Path: "/agent-requests", Allowed: []string{RoleAgent}},
		{Path: "/my-bookings", Allowed: []string{RoleCustomer}},
	}
}

// HomeForRole mirrors the backend's post-login redirect: admins land on the
// admin dashboard, agents on theirs, and everyone else on the search page.
func HomeForRole(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleAgent:
		return "/agent-dashboard"
	default:
		return "/search-results"
	}
}
