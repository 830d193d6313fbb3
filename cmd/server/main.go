package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/handler"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/server"
	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/internal/store"
	"github.com/MKhiriev/go-user-lists/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("user-lists-server")
	if err := run(context.Background(), log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
