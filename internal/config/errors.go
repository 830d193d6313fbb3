package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate].
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// configured. The server refuses to start without one.
	ErrMissingTokenSignKey = errors.New("token signing key is not set")

	// ErrMissingDSN indicates that no store connection string was configured.
	ErrMissingDSN = errors.New("database connection string is not set")

	// ErrUnsupportedDriver indicates a database driver other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrInvalidServerConfigs indicates an out-of-range port or a negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (bcrypt cost out of range, non-positive list size, negative token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
