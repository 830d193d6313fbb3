package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/crypto"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/store"
	"github.com/MKhiriev/go-user-lists/internal/validators"
)

type Services struct {
	AuthService AuthService
	ListService ListService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyNotSet
	}

	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewRequestValidator()

	listService := NewListValidationService(validator).
		Wrap(NewListService(storages.UserRepository, storages.ListRepository, cfg, logger))

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, validator, cfg, logger),
		ListService: listService,
	}, nil
}
