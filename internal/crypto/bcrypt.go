// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once per hasher and compared against when the
// caller has no stored hash.
const dummyPassword = "user-lists-dummy-password"

type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher returns a [PasswordHasher] producing bcrypt hashes with the
// given cost. The cost must be within [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy hash: %w", err)
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	if hash == "" {
		// result is discarded: the call only equalizes timing
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error comparing password: %w", err)
}
