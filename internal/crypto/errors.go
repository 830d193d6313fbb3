package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
)
