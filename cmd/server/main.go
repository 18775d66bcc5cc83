package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	_ "github.com/joho/godotenv/autoload"

	"github.com/driveease/web-portal/internal/api"
	"github.com/driveease/web-portal/internal/core/service"
	"github.com/driveease/web-portal/internal/infrastructure/backend"
	"github.com/driveease/web-portal/internal/infrastructure/db/redis"
	"github.com/driveease/web-portal/internal/pkg/config"
	"github.com/driveease/web-portal/internal/session"
	"github.com/driveease/web-portal/pkg/logger"
)

// @title        DriveEase Web Portal API
// @version      1.0
// @description  Browser-facing portal for the DriveEase vehicle rental platform: session management, role-gated pages, and a gateway to the rental backend.
// @host         localhost:3000
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// The redis connection exists only for the redis session backend; the
	// cookie and jwt backends keep the portal stateless.
	var rdb *goredis.Client
	if cfg.Session.Backend == session.BackendRedis {
		var err error
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	sessions, err := session.New(cfg.Session.Backend, session.Options{
		Secret: cfg.Session.Secret,
		KV:     sessionKV(rdb),
		TTL:    cfg.Session.TTL,
		Log:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("session store init failed")
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	authAPI := backend.NewAuthClient(client)
	bookingAPI := backend.NewBookingClient(client)
	adminAPI := backend.NewAdminClient(client)
	contactAPI := backend.NewContactClient(client)

	e := api.NewRouter(api.Dependencies{
		Log:      log,
		Sessions: sessions,

		Auth:      service.NewAuthService(authAPI, log),
		Customers: service.NewCustomerService(bookingAPI, authAPI, log),
		Agents:    service.NewAgentService(bookingAPI, adminAPI, log),
		Admins:    service.NewAdminService(bookingAPI, adminAPI, log),
		Contact:   service.NewContactService(contactAPI, log),

		Backend: client,
		Redis:   rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// sessionKV wraps the optional redis client; a nil client yields a nil KV so
// session.New can tell the backend was not configured.
func sessionKV(rdb *goredis.Client) session.KV {
	if rdb == nil {
		return nil
	}
	return session.NewRedisKV(rdb)
}
