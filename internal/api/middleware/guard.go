package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/api/metrics"
	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/session"
)

// ContextKeySession is where the guard stashes the validated session for
// downstream handlers.
const ContextKeySession = "session"

// Outcome is a route-guard decision.
type Outcome int

const (
	// OutcomeRender lets the requested page mount.
	OutcomeRender Outcome = iota
	// OutcomeRedirectLogin sends the browser to the login page. Both "no
	// session" and "wrong role" land here — an authenticated user on a page
	// outside their role is bounced to login, not to a forbidden page.
	OutcomeRedirectLogin
)

// Authorize is the complete access decision for a guarded page. A nil or
// empty allowed set means any authenticated user may view the page; a
// populated set additionally requires role membership. A role string outside
// the allowed set — including an unrecognised role tag — redirects.
func Authorize(sess domain.Session, allowed []string) Outcome {
	if !sess.Authenticated() {
		return OutcomeRedirectLogin
	}
	if len(allowed) == 0 {
		return OutcomeRender
	}
	for _, role := range allowed {
		if sess.Role == role {
			return OutcomeRender
		}
	}
	return OutcomeRedirectLogin
}

// Guard builds the echo middleware enforcing Authorize for one guarded route.
// The session is re-read from the store on every navigation; no decision is
// cached. Browser navigations are redirected with 303; fetch/XHR callers get
// a 401 JSON body so in-page scripts can degrade without following redirects.
func Guard(store session.Store, allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := store.Get(c)

			if Authorize(sess, allowed) == OutcomeRedirectLogin {
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				if wantsJSON(c.Request()) {
					return echo.NewHTTPError(http.StatusUnauthorized, "login required")
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			metrics.GuardDecisionsTotal.WithLabelValues("render").Inc()
			c.Set(ContextKeySession, sess)
			return next(c)
		}
	}
}

// wantsJSON distinguishes fetch/XHR calls from full-page navigations.
func wantsJSON(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, echo.MIMEApplicationJSON) &&
		!strings.Contains(accept, echo.MIMETextHTML)
}
