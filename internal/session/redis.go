package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
)

const sidCookie = "driveease_sid"

// KV is the minimal key/value surface the redis-backed store needs. Tests
// substitute an in-memory map; production wraps a redis client.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type redisKV struct {
	client *redis.Client
}

// NewRedisKV wraps a connected redis client as a KV.
func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// RedisStore keeps only an opaque session id in the browser and the
// {role, userId} pair server-side. TTL zero means no expiry, matching the
// other backends; a positive TTL adds idle-session cleanup.
//
// If redis is unreachable, reads report "not logged in" and failed writes are
// returned to the login flow — the portal degrades, it does not crash.
type RedisStore struct {
	kv  KV
	ttl time.Duration
	log zerolog.Logger
}

func NewRedisStore(kv KV, ttl time.Duration, log zerolog.Logger) *RedisStore {
	return &RedisStore{kv: kv, ttl: ttl, log: log}
}

func (s *RedisStore) Set(c echo.Context, sess domain.Session) error {
	if !sess.Authenticated() {
		return domain.MissingField("session")
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	sid := uuid.New().String()
	if err := s.kv.Set(c.Request().Context(), key(sid), string(payload), s.ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	c.SetCookie(newCookie(sidCookie, sid, 0))
	return nil
}

func (s *RedisStore) Get(c echo.Context) (domain.Session, bool) {
	cookie, err := c.Cookie(sidCookie)
	if err != nil || cookie.Value == "" {
		return domain.Session{}, false
	}

	payload, err := s.kv.Get(c.Request().Context(), key(cookie.Value))
	if err != nil {
		return domain.Session{}, false
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		s.log.Warn().Err(err).Msg("corrupt session payload")
		return domain.Session{}, false
	}
	if !sess.Authenticated() {
		return domain.Session{}, false
	}
	return sess, true
}

func (s *RedisStore) Clear(c echo.Context) error {
	cookie, err := c.Cookie(sidCookie)
	if err == nil && cookie.Value != "" {
		if err := s.kv.Del(c.Request().Context(), key(cookie.Value)); err != nil {
			// Logout still succeeds client-side; the orphaned record only
			// matters when a TTL is configured.
			s.log.Warn().Err(err).Msg("failed to delete server-side session")
		}
	}
	c.SetCookie(newCookie(sidCookie, "", -1))
	return nil
}

func key(sid string) string {
	return "session:" + sid
}
