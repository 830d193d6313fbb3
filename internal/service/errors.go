package service

import (
	"errors"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidListKind     = errors.New("invalid list kind")

	ErrTokenIsInvalid     = errors.New("token is invalid")
	ErrTokenSignKeyNotSet = errors.New("token sign key is not set")
)

// CredentialsError is returned by Authenticate. Message names the failed
// check and is meant to be shown to the caller.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string {
	return e.Message
}

// Unwrap makes errors.Is(err, ErrInvalidCredentials) hold.
func (e *CredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}
