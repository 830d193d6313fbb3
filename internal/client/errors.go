package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrNoCredentials  = errors.New("no token and no username/password configured")
)
