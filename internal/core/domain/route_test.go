package domain

import "testing"

func TestPageRoutes_RoleCoverage(t *testing.T) {
	byPath := make(map[string]Route)
	for _, r := range PageRoutes() {
		if _, dup := byPath[r.Path]; dup {
			t.Fatalf("duplicate route %s", r.Path)
		}
		byPath[r.Path] = r
	}

	protected := map[string][]string{
		"/admin":           {RoleAdmin},
		"/agent-dashboard": {RoleAgent},
		"/agent-inventory": {RoleAgent},
		"/agent-requests":  {RoleAgent},
		"/my-bookings":     {RoleCustomer},
	}
	for path, want := range protected {
		r, ok := byPath[path]
		if !ok {
			t.Fatalf("missing route %s", path)
		}
		if r.Public() {
			t.Fatalf("route %s must not be public", path)
		}
		if len(r.Allowed) != len(want) || r.Allowed[0] != want[0] {
			t.Fatalf("route %s allowed = %v, want %v", path, r.Allowed, want)
		}
	}

	public := []string{"/", "/login", "/signup", "/contact", "/about", "/fleet", "/search-results"}
	for _, path := range public {
		r, ok := byPath[path]
		if !ok {
			t.Fatalf("missing route %s", path)
		}
		if !r.Public() {
			t.Fatalf("route %s must be public", path)
		}
	}
}

func TestHomeForRole(t *testing.T) {
	if got := HomeForRole(RoleAdmin); got != "/admin" {
		t.Fatalf("admin home = %s", got)
	}
	if got := HomeForRole(RoleAgent); got != "/agent-dashboard" {
		t.Fatalf("agent home = %s", got)
	}
	if got := HomeForRole(RoleCustomer); got != "/search-results" {
		t.Fatalf("customer home = %s", got)
	}
	// Unrecognised roles fall back to the public search page.
	if got := HomeForRole("SOMETHING"); got != "/search-results" {
		t.Fatalf("fallback home = %s", got)
	}
}

func TestSessionAuthenticated(t *testing.T) {
	cases := []struct {
		sess Session
		want bool
	}{
		{Session{Role: RoleAgent, UserID: "1"}, true},
		{Session{Role: RoleAgent}, false},
		{Session{UserID: "1"}, false},
		{Session{}, false},
	}
	for _, tc := range cases {
		if got := tc.sess.Authenticated(); got != tc.want {
			t.Fatalf("Authenticated(%+v) = %v, want %v", tc.sess, got, tc.want)
		}
	}
}
