package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// HealthHandlerFunc returns an http.HandlerFunc that pings the database and,
// when configured, Redis in parallel. It answers 200 if every configured
// dependency is reachable and 503 otherwise. redis may be nil.
func HealthHandlerFunc(db Pinger, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		dbStatus := "ok"
		redisStatus := "disabled"

		g, gCtx := errgroup.WithContext(ctx)

		g.Go(func() error {
			if err := db.Ping(gCtx); err != nil {
				log.Error("health check: db ping failed", "err", err)
				dbStatus = "error"
			}
			return nil
		})

		if redis != nil {
			redisStatus = "ok"
			g.Go(func() error {
				if err := redis.Ping(gCtx); err != nil {
					log.Error("health check: redis ping failed", "err", err)
					redisStatus = "error"
				}
				return nil
			})
		}

		_ = g.Wait()

		status, overall := http.StatusOK, "ok"
		if dbStatus == "error" || redisStatus == "error" {
			status, overall = http.StatusServiceUnavailable, "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
