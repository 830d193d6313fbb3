// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
	maxPort             = 65535
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.DB.Driver)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 || cfg.Storage.DB.QueryTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.App.ListMaxSize < 1 {
		return fmt.Errorf("%w: list max size %d", ErrInvalidAppConfigs, cfg.App.ListMaxSize)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
