package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/compasshq/compass/internal/httpserver/deps"
	"github.com/compasshq/compass/internal/logger"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness. The catalog is loaded before the server starts,
// so the only runtime dependency to probe is the session backend.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := true
		if d.RedisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.RedisClient.Ping(ctx).Err(); err != nil {
				d.Logger.Warn("readiness ping to redis failed", logger.Error(err))
				ready = false
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: ready})
	}
}
