package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/gamestack/admin/internal/api"
	"github.com/gamestack/admin/internal/config"
	"github.com/gamestack/admin/internal/factory"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/services/auth"
	"github.com/gamestack/admin/internal/storage"
	redisstorage "github.com/gamestack/admin/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		AuthConfig: auth.Config{
			Secret:          cfg.SessionSecret,
			SessionDuration: cfg.SessionTTL,
		},
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Bootstrap an admin account if requested
	if cfg.SeedAdmin != "" {
		if err := seedAdmin(context.Background(), app.Storage, cfg.SeedAdmin, logger); err != nil {
			logger.Error("failed to seed admin account", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		AdminService: app.AdminService,
		Storage:      app.Storage,
		CookieName:   cfg.SessionCookie,
		SessionTTL:   cfg.SessionTTL,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// seedAdmin creates an admin account from a "username:password" spec.
// Does nothing if the username is already taken.
func seedAdmin(ctx context.Context, store storage.Storage, spec string, logger *slog.Logger) error {
	username, password, ok := strings.Cut(spec, ":")
	if !ok || username == "" || password == "" {
		return errors.New("SEED_ADMIN must be in username:password form")
	}

	if _, err := store.GetUserByUsername(ctx, username); err == nil {
		logger.Info("seed admin already exists", slog.String("username", username))
		return nil
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		Email:        username + "@localhost",
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := store.SaveUser(ctx, user); err != nil {
		return err
	}

	logger.Info("seeded admin account",
		slog.String("username", username),
		slog.String("id", string(user.ID)))
	return nil
}
