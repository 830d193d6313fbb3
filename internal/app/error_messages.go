// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-lists server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Formats ending in F take fmt verbs and are filled in by the handlers.
package app

const (
	// MsgUserRegisteredF is returned on successful registration. The verb is
	// the username.
	MsgUserRegisteredF = "User %s successfully registered"

	// MsgLoginSuccessful is returned together with the token on login.
	MsgLoginSuccessful = "login successful"

	// MsgUsernameTaken is returned when registration is rejected because the
	// username is already in use.
	MsgUsernameTaken = "User Name already taken"

	// MsgPasswordsDoNotMatch is returned when password2 is sent and differs
	// from password.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidItemID is returned when a list item id is blank or too long.
	MsgInvalidItemID = "invalid item id"

	// MsgListIsFull is returned when a new id does not fit into the list.
	MsgListIsFull = "list is full"

	// MsgUnableToGetListF is the default failure of a list read. The verbs
	// are the list kind and the user id.
	MsgUnableToGetListF = "Unable to get %s for user with id: %s"

	// MsgUnableToUpdateListF is the default failure of a list mutation.
	MsgUnableToUpdateListF = "Unable to update %s for user with id: %s"

	// MsgUnauthorized is returned when a protected route is called without
	// a usable bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenIsInvalid is returned when a bearer token fails verification.
	MsgTokenIsInvalid = "token is invalid"

	// MsgUserNoLongerExists is returned when a valid token names a user that
	// is not in the store anymore.
	MsgUserNoLongerExists = "user no longer exists"

	// MsgStoreUnavailable is returned when the store cannot be reached.
	MsgStoreUnavailable = "store unavailable"

	// MsgStoreTimeout is returned when a store call exceeds its deadline.
	MsgStoreTimeout = "store timeout"

	// MsgRegistrationFailed is returned when registration fails for a reason
	// the caller cannot fix by changing the request.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a token.
	MsgLoginFailed = "login failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is written for unknown routes and unsupported methods.
	MsgNotFound = "not found"
)
