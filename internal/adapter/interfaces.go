// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-user-lists REST API.
//
// [ServerAdapter] hides the transport from callers: it serialises requests,
// attaches the bearer token and maps non-2xx responses to the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrUnprocessable] for 422). The message from the server's JSON
// envelope is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-lists/models"
)

// ServerAdapter defines communication with the go-user-lists server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the server's confirmation
	// message. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it together with the user id it was issued for.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Favourites and History return the caller's lists. The Add* and
	// Remove* methods return the list after the change.
	Favourites(ctx context.Context) ([]string, error)
	AddFavourite(ctx context.Context, itemID string) ([]string, error)
	RemoveFavourite(ctx context.Context, itemID string) ([]string, error)

	History(ctx context.Context) ([]string, error)
	AddHistory(ctx context.Context, itemID string) ([]string, error)
	RemoveHistory(ctx context.Context, itemID string) ([]string, error)
}
