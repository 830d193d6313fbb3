// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/migrations"
)

// DB wraps *sql.DB with the driver specific pieces the repositories need:
// the error classifier, the placeholder format and the per call timeout.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	placeholder        sq.PlaceholderFormat
	queryTimeout       time.Duration
	logger             *logger.Logger
}

// NewConnect opens and pings the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driverName string, queryTimeout time.Duration, log *logger.Logger) *DB {
	db := &DB{
		DB:           conn,
		driver:       driverName,
		queryTimeout: queryTimeout,
		logger:       log,
	}

	switch driverName {
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.placeholder = sq.Question
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
		db.placeholder = sq.Dollar
	}

	return db
}

// Migrate applies the embedded schema using the dialect of the driver.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := migrations.DialectPostgres
	if db.driver == config.DriverSQLite {
		dialect = migrations.DialectSQLite
	}

	applied, err := migrations.Migrate(ctx, db.DB, dialect)
	if err != nil {
		return err
	}

	db.logger.Info().Int("applied", applied).Str("dialect", dialect).Msg("migrations are up to date")
	return nil
}

// builder returns a squirrel statement builder using the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// withTimeout bounds ctx by the configured query timeout. A zero timeout
// leaves ctx unbounded.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, db.queryTimeout)
}

// mapError turns timeouts and connection-class failures into ErrStoreTimeout
// and ErrStoreUnavailable. Other errors are returned unchanged.
func (db *DB) mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrStoreTimeout, err)
	}

	if db.isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return err
}

func (db *DB) isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err is a unique or primary key
// constraint violation.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator.Classify(err) == UniqueViolation
}

// rollback is deferred after BeginTx. It is a no-op once the transaction
// has been committed.
func (db *DB) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Msg("error rolling back transaction")
	}
}
