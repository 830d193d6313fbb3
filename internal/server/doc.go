// Package server runs the HTTP transport of the API.
//
// It binds the listen address before serving, so a bind failure is reported
// to the caller instead of being lost in a goroutine, and it shuts the server
// down gracefully on SIGINT, SIGTERM or SIGQUIT or when the run context is
// cancelled.
package server
