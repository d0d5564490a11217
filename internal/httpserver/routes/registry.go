package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/compasshq/compass/internal/httpserver/deps"
)

// Registrar mounts one route group on the router.
type Registrar func(r chi.Router, d deps.Deps)

var registry []Registrar

// Register queues a registrar; each route file calls it from init().
func Register(reg Registrar) {
	registry = append(registry, reg)
}

// RegisterAll mounts every queued registrar. Called once from server.New.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, reg := range registry {
		reg(r, d)
	}
}
