package adapter

import "errors"

var (
	ErrNoToken = errors.New("no bearer token set, log in first")

	ErrUnauthorized        = errors.New("client unauthorized")
	ErrUnprocessable       = errors.New("request rejected")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)
