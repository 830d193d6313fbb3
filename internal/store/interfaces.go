package store

import (
	"context"

	"github.com/MKhiriev/go-user-lists/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with UserID and CreatedAt set.
	// A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername and FindUserByID yield ErrNoUserWasFound when there
	// is no such user.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ListRepository persists the favourites and history sets of each user.
//
// Every method returns the full list after the call, oldest id first. The
// returned slice is never nil.
type ListRepository interface {
	GetItems(ctx context.Context, userID string, kind models.ListKind) ([]string, error)

	// AddItem adds itemID unless it is already present. A list already
	// holding limit ids rejects a new id with ErrListIsFull.
	AddItem(ctx context.Context, userID string, kind models.ListKind, itemID string, limit int) ([]string, error)

	// RemoveItem removes itemID if it is present.
	RemoveItem(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error)
}

// ErrorClassificator sorts driver errors into the classes the store reacts
// to.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
