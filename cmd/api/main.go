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

	"github.com/joho/godotenv"
	"github.com/yogastudio/yoga-api/internal/config"
	"github.com/yogastudio/yoga-api/internal/crypto"
	"github.com/yogastudio/yoga-api/internal/handler"
	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/middleware"
	"github.com/yogastudio/yoga-api/internal/repository"
	"github.com/yogastudio/yoga-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := repository.Migrate(db, cfg.DatabaseDriver); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
	}

	userRepo := repository.NewUserRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	tokens := crypto.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	identities := service.NewIdentityService(userRepo)
	authService := service.NewAuthService(userRepo, identities, tokens, hasher)
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	mapper := service.NewSessionMapper(teacherRepo, userRepo)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	router := handler.NewRouter(handler.RouterConfig{
		Logger:      logger,
		Tokens:      tokens,
		Identities:  identities,
		AuthLimiter: middleware.RateLimit(ctx, cfg.AuthRateRPS, cfg.AuthRateBurst),
		Auth:        handler.NewAuthHandler(authService),
		Sessions:    handler.NewSessionHandler(sessionService, mapper),
		Teachers:    handler.NewTeacherHandler(service.NewTeacherService(teacherRepo)),
		Users:       handler.NewUserHandler(service.NewUserService(userRepo)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
