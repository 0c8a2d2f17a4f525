// Package main wires the read-only PluralKit v2 API server.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ambdroid/PluralKit/config"
	"github.com/ambdroid/PluralKit/internal/auth"
	api "github.com/ambdroid/PluralKit/internal/oapi"
	"github.com/ambdroid/PluralKit/internal/repository"
	"github.com/ambdroid/PluralKit/internal/transport/http/middleware"
	handlers_fiber "github.com/ambdroid/PluralKit/internal/transport/http/server/handlers-fiber"
	"github.com/ambdroid/PluralKit/internal/usecase"
	"github.com/ambdroid/PluralKit/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var cache auth.Cache
	if cfg.Redis.Enabled() {
		rc, err := auth.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Errorw("redis initialization error", "error", err, "addr", cfg.Redis.Addr)
			return
		}
		defer func() { _ = rc.Close() }()
		cache = rc
		log.Infow("token cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Auth.TokenCacheTTL)
	}
	authenticator := auth.NewAuthenticator(log, repo, cache, cfg.Auth.TokenCacheTTL)

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h, middleware.Auth(log, authenticator))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
