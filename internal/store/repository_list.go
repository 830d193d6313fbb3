// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/models"
)

// listRepository is the database/sql implementation of [ListRepository].
// Ids live in the "user_items" table keyed by (user_id, kind, item_id).
type listRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by db.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *listRepository) GetItems(ctx context.Context, userID string, kind models.ListKind) ([]string, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	items, err := r.selectItems(ctx, r.db, userID, kind)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.GetItems").Msg("error selecting items")
		return nil, r.db.mapError(ctx, err)
	}

	return items, nil
}

func (r *listRepository) AddItem(ctx context.Context, userID string, kind models.ListKind, itemID string, limit int) ([]string, error) {
	var items []string
	err := r.inUserTx(ctx, userID, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		items, err = r.selectItems(ctx, tx, userID, kind)
		if err != nil {
			return err
		}

		if slices.Contains(items, itemID) {
			return nil
		}
		if len(items) >= limit {
			return ErrListIsFull
		}

		query, args, err := r.db.insertItemQuery(userID, kind, itemID, r.now().UTC()).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		items = append(items, itemID)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.AddItem").Str("kind", kind.String()).Msg("error adding item")
		return nil, err
	}

	return items, nil
}

func (r *listRepository) RemoveItem(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error) {
	var items []string
	err := r.inUserTx(ctx, userID, func(ctx context.Context, tx *sql.Tx) error {
		query, args, err := r.db.deleteItemQuery(userID, kind, itemID).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		items, err = r.selectItems(ctx, tx, userID, kind)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listRepository.RemoveItem").Str("kind", kind.String()).Msg("error removing item")
		return nil, err
	}

	return items, nil
}

// inUserTx runs fn in a transaction that first locks the owner's row, so
// mutations of one user's lists never interleave. A missing owner yields
// ErrNoUserWasFound.
func (r *listRepository) inUserTx(ctx context.Context, userID string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.db.mapError(ctx, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer r.db.rollback(ctx, tx)

	query, args, err := r.db.lockUserQuery(userID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lockedID string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}
	if err != nil {
		return r.db.mapError(ctx, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	if err = fn(ctx, tx); err != nil {
		return r.db.mapError(ctx, err)
	}

	if err = tx.Commit(); err != nil {
		return r.db.mapError(ctx, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

func (r *listRepository) selectItems(ctx context.Context, q querier, userID string, kind models.ListKind) ([]string, error) {
	query, args, err := r.db.selectItemsQuery(userID, kind).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var itemID string
		if err = rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, itemID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
