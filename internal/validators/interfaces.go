// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request data before it reaches the store.
//
// Validator is the generic entry point: callers pass a value and, for plain
// values that could mean several things (an item id is just a string),
// the name of the field being validated. Struct rules are declared with
// `validate` tags on the models and evaluated by go-playground/validator.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
