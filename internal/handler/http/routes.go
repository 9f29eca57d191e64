package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/{resource}", h.getPage)
	})

	router.NotFound(writeNothingHere)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
