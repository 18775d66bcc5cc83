package domain

// Role tags governing page visibility. The set is closed: any other string is
// accepted into a session but matches no allowed set, so it cannot reach a
// protected page.
const (
	RoleCustomer = "CUSTOMER"
	RoleAgent    = "AGENT"
	RoleAdmin    = "ADMIN"
)

// Session is the client-held identity pair for one browser tab: who is logged
// in, as what role. It is advisory for page gating only — the rental backend
// never reads it, and real access control is enforced server-side there.
type Session struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// Authenticated reports whether both fields are present. Role and UserID are
// written and cleared together, so a half-empty pair is treated the same as no
// session at all.
func (s Session) Authenticated() bool {
	return s.Role != "" && s.UserID != ""
}
