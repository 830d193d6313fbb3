package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/models"
)

const (
	usersTable = "users"
	itemsTable = "user_items"
)

var userColumns = []string{"user_id", "username", "password_hash", "created_at"}

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash, user.CreatedAt)
}

func (db *DB) selectUserQuery(where sq.Eq) sq.SelectBuilder {
	return db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where)
}

// lockUserQuery selects the owner row. On PostgreSQL the row stays locked
// until the transaction ends; SQLite has a single connection, which already
// serializes transactions.
func (db *DB) lockUserQuery(userID string) sq.SelectBuilder {
	query := db.builder().
		Select("user_id").
		From(usersTable).
		Where(sq.Eq{"user_id": userID})

	if db.driver == config.DriverPostgres {
		query = query.Suffix("FOR UPDATE")
	}

	return query
}

func (db *DB) selectItemsQuery(userID string, kind models.ListKind) sq.SelectBuilder {
	return db.builder().
		Select("item_id").
		From(itemsTable).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"kind": string(kind)},
		}).
		OrderBy("added_at", "item_id")
}

func (db *DB) insertItemQuery(userID string, kind models.ListKind, itemID string, addedAt time.Time) sq.InsertBuilder {
	return db.builder().
		Insert(itemsTable).
		Columns("user_id", "kind", "item_id", "added_at").
		Values(userID, string(kind), itemID, addedAt)
}

func (db *DB) deleteItemQuery(userID string, kind models.ListKind, itemID string) sq.DeleteBuilder {
	return db.builder().
		Delete(itemsTable).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"kind": string(kind)},
			sq.Eq{"item_id": itemID},
		})
}
