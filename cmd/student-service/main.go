// main is the entry point of the student records service.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the storage backend (MongoDB or SQLite, per config)
//  4. Build the router from the static route table
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, close storage
//
// RUNNING THE SERVER:
//
//	JWT_SECRET=... go run ./cmd/student-service --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml JWT_SECRET=... go run ./cmd/student-service
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/auth"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/config"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/http/router"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage/mongodb"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage/sqlite"
)

func main() {
	// MustLoad panics on an invalid config — crash at boot, not at the
	// first request.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	// The handlers only ever see the storage.Storage interface; which
	// backend sits behind it is decided here and nowhere else.
	var (
		store   storage.Storage
		closeFn func(context.Context) error
	)
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := sqlite.New(cfg)
		if err != nil {
			log.Error("failed to initialise storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = db
		closeFn = func(context.Context) error { return db.Close() }
		log.Info("storage initialised", slog.String("path", cfg.Storage.Path))

	default: // "mongo"
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := mongodb.New(ctx, cfg)
		cancel()
		if err != nil {
			log.Error("failed to initialise storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = db
		closeFn = db.Close
		log.Info("storage initialised", slog.String("database", cfg.Storage.MongoDatabase))
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router.New(store, tokens),

		// Server-level timeouts guard against slow clients.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Buffered so the signal is not missed if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := closeFn(ctx); err != nil {
		log.Error("failed to close storage", slog.String("error", err.Error()))
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment:
// human-readable text at DEBUG for dev, JSON for staging/prod.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
