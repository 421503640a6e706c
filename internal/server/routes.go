package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/health", h.health)
	router.Get("/api/defs", h.getDefs)
	router.Get("/api/defs/assets", h.getAssets)

	return router
}
