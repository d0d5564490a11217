package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/compasshq/compass/internal/httpserver/deps"
	"github.com/compasshq/compass/internal/httpserver/handlers"
	"github.com/compasshq/compass/internal/httpserver/mw"
)

func init() { Register(registerGraphQL) }

func registerGraphQL(r chi.Router, d deps.Deps) {
	gr := r.With(mw.Auth(d.Sessions, d.CookieName, d.Logger))
	if d.RateLimitBurst > 0 {
		gr = gr.With(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			TrustProxy:        d.TrustProxy,
		}))
	}

	handler := handlers.GraphQL(d)
	gr.Post("/graphql", handler)
	gr.Get("/graphql", handler)
}
