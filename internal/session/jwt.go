package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/domain"
)

const jwtCookie = "driveease_session"

// JWTStore keeps the pair in a single HS256-signed cookie, for deployments
// that want tamper evidence on the client-held value. No exp claim is set:
// the session lives until logout, matching the cookie backend. A token that
// fails signature or shape checks reads as "not logged in".
type JWTStore struct {
	secret []byte
}

func NewJWTStore(secret string) *JWTStore {
	return &JWTStore{secret: []byte(secret)}
}

func (s *JWTStore) Set(c echo.Context, sess domain.Session) error {
	if !sess.Authenticated() {
		return domain.MissingField("session")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":   sess.Role,
		"userId": sess.UserID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetCookie(newCookie(jwtCookie, signed, 0))
	return nil
}

func (s *JWTStore) Get(c echo.Context) (domain.Session, bool) {
	cookie, err := c.Cookie(jwtCookie)
	if err != nil || cookie.Value == "" {
		return domain.Session{}, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, false
	}

	role, _ := claims["role"].(string)
	uid, _ := claims["userId"].(string)
	sess := domain.Session{Role: role, UserID: uid}
	if !sess.Authenticated() {
		return domain.Session{}, false
	}
	return sess, true
}

func (s *JWTStore) Clear(c echo.Context) error {
	c.SetCookie(newCookie(jwtCookie, "", -1))
	return nil
}
