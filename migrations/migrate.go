// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded SQL schema and applies it with goose.
// The same files run on PostgreSQL and SQLite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Dialect names accepted by [Migrate].
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration to db. It returns the number of
// migrations that were applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", errNilDB)
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return 0, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	provider, err := goose.NewProvider(gooseDialect, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
