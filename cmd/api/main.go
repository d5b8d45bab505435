// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

// Command api is the entry point for the Eventide HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Open the media upload store.
//  7. Wire HTTP handlers and seed the bootstrap admin.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/duongnk/eventide/internal/analytics"
	"github.com/duongnk/eventide/internal/api"
	"github.com/duongnk/eventide/internal/core/category"
	"github.com/duongnk/eventide/internal/core/contact"
	"github.com/duongnk/eventide/internal/core/event"
	"github.com/duongnk/eventide/internal/core/language"
	"github.com/duongnk/eventide/internal/core/media"
	"github.com/duongnk/eventide/internal/core/post"
	"github.com/duongnk/eventide/internal/core/reference"
	"github.com/duongnk/eventide/internal/platform/config"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/mail"
	"github.com/duongnk/eventide/internal/platform/migration"
	pgstore "github.com/duongnk/eventide/internal/platform/postgres"
	redisstore "github.com/duongnk/eventide/internal/platform/redis"
	"github.com/duongnk/eventide/internal/platform/sec"
	"github.com/duongnk/eventide/internal/platform/upload"
	"github.com/duongnk/eventide/internal/search"
	"github.com/duongnk/eventide/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "eventide"))
	slog.SetDefault(log)

	log.Info("[Eventide] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "eventide"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Upload Store ───────────────────────────────────────────────────
	files, err := upload.NewStore(cfg.UploadDir)
	must(log, err, "open upload store")

	// ── 7. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckStorage: func() error {
			_, serr := os.Stat(files.Root())
			return serr
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.ContactEmail, log)

	languageService := language.NewService(language.NewRedisSessionRepository(rdb), log)
	languageHandler := language.NewHandler(languageService)

	analyticsService := analytics.NewService(analytics.NewPostgresRepository(pool), log)
	analyticsHandler := analytics.NewHandler(analyticsService)

	eventService := event.NewService(event.NewPostgresRepository(pool), analyticsService, log)
	eventHandler := event.NewHandler(eventService)

	postService := post.NewService(post.NewPostgresRepository(pool), analyticsService, log)
	postHandler := post.NewHandler(postService)

	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	categoryHandler := category.NewHandler(categoryService)

	mediaService := media.NewService(media.NewPostgresRepository(pool), files, log)
	mediaHandler := media.NewHandler(mediaService)

	referenceService := reference.NewService(reference.NewPostgresRepository(pool), log)
	referenceHandler := reference.NewHandler(referenceService)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), mailer, log)
	contactHandler := contact.NewHandler(contactService)

	searchService := search.NewService(search.NewPostgresRepository(pool), log)
	searchHandler := search.NewHandler(searchService)

	authService := auth.NewService(auth.NewPostgresRepository(pool), jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	must(log, authService.SeedDefaultAdmin(startupCtx, cfg.AdminUsername, cfg.AdminPassword), "seed default admin")

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Search:    searchHandler,
		Language:  languageHandler,
		Event:     eventHandler,
		Post:      postHandler,
		Category:  categoryHandler,
		Media:     mediaHandler,
		Reference: referenceHandler,
		Contact:   contactHandler,
		Analytics: analyticsHandler,
	}

	// Application-lifetime context for background middleware routines. The
	// startup context has a deadline and must not outlive wiring.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, jwtSvc, languageService, http.Dir(files.Root()), handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
