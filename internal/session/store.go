// Package session holds the portal's only mutable shared state: the
// browser-tab identity pair {role, userId}. It is written on login, cleared
// on logout, and read by the route guard on every navigation.
//
// The Store is injected wherever identity is needed — never reached as
// ambient global state — so it can be stubbed in tests and its persistence
// swapped by configuration. Whatever the backing storage, the stored value is
// advisory UI gating only: it carries no proof of the backend-side role, and
// real access control remains the rental backend's job.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
)

// Backend names accepted by config.
const (
	BackendCookie = "cookie"
	BackendJWT    = "jwt"
	BackendRedis  = "redis"
)

// ErrUnknownBackend is returned by New for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown session backend")

// Store persists the authenticated identity for one browser.
//
// Set writes role and userId together; Get returns the pair with ok=false for
// an unauthenticated browser; Clear removes both values and is idempotent.
// Storage failure never propagates as a crash: reads degrade to "not logged
// in" and failed writes surface as an error the login flow can report.
type Store interface {
	Set(c echo.Context, sess domain.Session) error
	Get(c echo.Context) (domain.Session, bool)
	Clear(c echo.Context) error
}

// Options carries the backend-specific wiring a Store may need.
type Options struct {
	Secret string // jwt backend
	KV     KV     // redis backend
	TTL    time.Duration
	Log    zerolog.Logger
}

// New builds the Store named by backend.
func New(backend string, opts Options) (Store, error) {
	switch backend {
	case BackendCookie, "":
		return NewCookieStore(), nil
	case BackendJWT:
		if opts.Secret == "" {
			return nil, errors.New("jwt session backend requires a secret")
		}
		return NewJWTStore(opts.Secret), nil
	case BackendRedis:
		if opts.KV == nil {
			return nil, errors.New("redis session backend requires a connection")
		}
		return NewRedisStore(opts.KV, opts.TTL, opts.Log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
