// Package redis establishes the connection backing the redis session store.
// The portal holds no other server-side state, so this is its only datastore
// and it is dialed only when SESSION_BACKEND=redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config captures the settings for the session-store connection.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect dials redis and fails fast if it cannot be pinged. A portal
// configured for redis sessions must not start without it: every login would
// fail while every page would still render logged-out, which is worse than a
// crash at boot.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
