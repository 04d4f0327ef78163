package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodyBytes caps JSON request bodies after decompression.
const maxRequestBodyBytes = 16 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withCORS, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequestSize(maxRequestBodyBytes))

			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/calculate-route", h.calculateRoute)
		})

		r.Get("/network", h.network)

		r.Get("/health", h.health)
		r.Get("/version", h.version)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
