package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/utils"
)

// Storages bundles the repositories the services depend on together with
// the connection they share.
type Storages struct {
	UserRepository UserRepository
	ListRepository ListRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the store: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating the store: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, utils.NewUUIDGenerator(), log),
		ListRepository: NewListRepository(db, log),
		db:             db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
