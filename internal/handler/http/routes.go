package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-user-lists/models"
)

// compressionLevel is the gzip level of compressed JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// unsupported methods on known paths look like unknown paths
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}),
		middleware.Compress(compressionLevel, "application/json"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry}))

	router.Route("/api/user", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			for _, kind := range []models.ListKind{models.Favourites, models.History} {
				r.Get("/"+kind.String(), h.getList(kind))
				r.Put("/"+kind.String()+"/{"+itemIDParam+"}", h.addToList(kind))
				r.Delete("/"+kind.String()+"/{"+itemIDParam+"}", h.removeFromList(kind))
			}
		})
	})

	return router
}
