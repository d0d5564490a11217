package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/compasshq/compass/internal/httpserver/deps"
)

func init() { Register(registerMetrics) }

func registerMetrics(r chi.Router, d deps.Deps) {
	if !d.MetricsEnabled || d.Metrics == nil {
		return
	}
	r.Handle("/metrics", d.Metrics.Handler())
}
