package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/domain"
)

const (
	roleCookie = "driveease_role"
	userCookie = "driveease_uid"
)

// CookieStore keeps the pair in two plain browser cookies, the direct analog
// of the original client's two local-storage scalars. No signature and no
// expiry: the browser holds the value until logout, and the portal trusts
// whatever comes back. Suitable only because the gate is a UI convenience.
type CookieStore struct{}

func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

func (s *CookieStore) Set(c echo.Context, sess domain.Session) error {
	if !sess.Authenticated() {
		return domain.MissingField("session")
	}
	c.SetCookie(newCookie(roleCookie, sess.Role, 0))
	c.SetCookie(newCookie(userCookie, sess.UserID, 0))
	return nil
}

func (s *CookieStore) Get(c echo.Context) (domain.Session, bool) {
	role, err := c.Cookie(roleCookie)
	if err != nil {
		return domain.Session{}, false
	}
	uid, err := c.Cookie(userCookie)
	if err != nil {
		return domain.Session{}, false
	}

	sess := domain.Session{Role: role.Value, UserID: uid.Value}
	if !sess.Authenticated() {
		// One half of the pair is missing or blank; treat as logged out.
		return domain.Session{}, false
	}
	return sess, true
}

func (s *CookieStore) Clear(c echo.Context) error {
	c.SetCookie(newCookie(roleCookie, "", -1))
	c.SetCookie(newCookie(userCookie, "", -1))
	return nil
}

func newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
