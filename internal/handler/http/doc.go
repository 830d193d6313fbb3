// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, metrics and response compression are handled in this
// package before requests are delegated to the service layer.
//
// Register and login failures are answered with {"message": ...}; list and
// authorization failures with {"error": ...}. Failures the caller can act on
// use 422, a missing or rejected token 401, and store outages 503 or 504.
package http
