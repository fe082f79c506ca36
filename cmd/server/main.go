package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Konete326/elitedev/internal/config"
	"github.com/Konete326/elitedev/internal/db"
	"github.com/Konete326/elitedev/internal/delivery/handler"
	"github.com/Konete326/elitedev/internal/infrastructure"
	"github.com/Konete326/elitedev/internal/repository"
	"github.com/Konete326/elitedev/internal/session"
	"github.com/Konete326/elitedev/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	logger.Info("mongodb connected", "database", cfg.MongoDB)

	database := client.Database(cfg.MongoDB)
	userRepo := repository.NewUserRepo(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}
	contactRepo := repository.NewContactRepo(database)

	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisStore := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		if err := redisStore.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, falling back to in-memory sessions", "error", err)
		} else {
			defer func() { _ = redisStore.Close() }()
			store = redisStore
			logger.Info("using redis session store", "addr", cfg.RedisAddr)
		}
	}
	sessions := session.NewManager(store, cfg.SessionTTL)

	tokens := infrastructure.NewJWTService(cfg.SessionSecret, time.Hour)
	notifier := infrastructure.NewContactNotifier(cfg.SendgridAPIKey, cfg.ContactNotifyEmail)
	if notifier.Enabled() {
		logger.Info("contact notifications enabled", "recipient", cfg.ContactNotifyEmail)
	}

	users := usecase.NewUserUsecase(userRepo)
	contacts := usecase.NewContactUsecase(contactRepo, notifier, logger)
	admin := usecase.NewAdminUsecase(userRepo, contactRepo, cfg.AdminPassword, tokens)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Static("/", cfg.PublicDir)

	h := handler.New(users, contacts, admin, sessions, logger)
	h.Register(e)

	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
