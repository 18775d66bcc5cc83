package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/api/middleware"
	"github.com/driveease/web-portal/internal/core/domain"
)

// currentSession extracts the session stashed by the route guard. Handlers
// behind a guard can rely on it; a missing value means the route was wired
// without its guard, which is a server bug, so fail closed with 401.
func currentSession(c echo.Context) (domain.Session, error) {
	sess, ok := c.Get(middleware.ContextKeySession).(domain.Session)
	if !ok || !sess.Authenticated() {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
