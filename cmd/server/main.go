package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/goa-trips/internal/api"
	"github.com/neexbeast/goa-trips/internal/cache"
	"github.com/neexbeast/goa-trips/internal/config"
	"github.com/neexbeast/goa-trips/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	applied, err := storage.ApplySchema(ctx, pool, cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	log.Info("schema applied", "dir", cfg.MigrationsDir, "files", applied)

	var (
		destCache   api.DestinationCache
		redisPinger api.Pinger
	)
	if cfg.CacheEnabled() {
		var redisClient *redis.Client
		redisClient, err = cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		destCache = cache.NewCache(redisClient, cfg.CacheTTL)
		redisPinger = cache.Pinger{Client: redisClient}
		log.Info("destination cache enabled", "ttl", cfg.CacheTTL)
	} else {
		log.Info("destination cache disabled")
	}

	repo := storage.NewRepository(pool)
	handlers := api.NewHandlers(repo, repo, destCache, log)

	router := api.NewRouter(handlers, api.RouterConfig{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, pool, redisPinger, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
