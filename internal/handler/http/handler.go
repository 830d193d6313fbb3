package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// registry backs the /metrics endpoint. Every Handler owns its own
	// registry so handlers built in tests do not collide.
	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		registry:       registry,
		metrics:        newHTTPMetrics(registry),
		logger:         logger,
	}
}
