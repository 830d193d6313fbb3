package service

import (
	"context"

	"github.com/MKhiriev/go-user-lists/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and issues and
// verifies bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
	IssueToken(ctx context.Context, userID string) (models.Token, error)

	// VerifyToken never touches the store.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ListService reads and mutates the favourites and history of a user. Every
// method returns the list after the call; the slice is never nil.
type ListService interface {
	GetList(ctx context.Context, userID string, kind models.ListKind) ([]string, error)
	AddToList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error)
	RemoveFromList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error)
}

// ListServiceWrapper defines middleware composition for ListService.
// Implementations wrap an existing ListService to add behavior such as
// validation.
type ListServiceWrapper interface {
	Wrap(ListService) ListService
}
