package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxLifetime = 30 * time.Minute
)

// NewConnectPostgres opens a PostgreSQL pool through the pgx database/sql
// driver and pings it within the configured query timeout.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxLifetime(postgresConnMaxLifetime)

	db := newDB(conn, config.DriverPostgres, cfg.QueryTimeout, log)

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// ping checks the connection. Any failure is reported as ErrStoreUnavailable
// or ErrStoreTimeout.
func (db *DB) ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	err := db.PingContext(ctx)
	if err == nil {
		return nil
	}

	if mapped := db.mapError(ctx, err); mapped != err {
		return mapped
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
