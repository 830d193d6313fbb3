// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued to a logged-in user.
//
// The user identifier travels in the "_id" claim. Registered claims are
// populated only when the corresponding option is configured (issuer,
// expiry), so by default the token carries the user id and nothing else.
type Claims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

// Token is a signed bearer token together with the user it was issued for.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier carried in the "_id" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
