// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account. Favourites and history are not part of the
// record itself: they live in the store as per-user sets and are read
// through [ListKind]-scoped operations.
type User struct {
	// UserID is the opaque identifier assigned by the store on creation.
	// It never changes once assigned.
	UserID string `json:"_id"`

	// Username is unique and case-sensitive.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// RegisterRequest is the body of a registration request.
//
// Password2 is optional; when it is sent it must repeat Password.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=64"`
	Password  string `json:"password" validate:"required,max=72"`
	Password2 string `json:"password2,omitempty" validate:"omitempty,eqfield=Password"`
}

// Credentials returns the login part of the registration request.
func (r RegisterRequest) Credentials() Credentials {
	return Credentials{Username: r.Username, Password: r.Password}
}
