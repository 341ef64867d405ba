package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/config"
	"github.com/oksasatya/starwars-blog-api/internal/container"
	"github.com/oksasatya/starwars-blog-api/internal/identity"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-blog-api/internal/router"
	"github.com/oksasatya/starwars-blog-api/pkg/helpers"
	"github.com/oksasatya/starwars-blog-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	store, err := persistence.Open(ctx, persistence.Options{
		DatabaseURL: cfg.PostgresDSN(),
		SQLitePath:  cfg.SQLitePath,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	}, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Redis is optional; without it rate limiting is disabled.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := helpers.PingRedis(ctx, rdb, 2*time.Second); err != nil {
			logger.WithField("error", err.Error()).Warn("redis unreachable, rate limiter fails open")
		}
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetStore(store)
	container.SetRedis(rdb)
	container.SetResolver(identity.Fixed(cfg.CurrentUserID))

	r := router.New()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "dialect": store.Dialect}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
