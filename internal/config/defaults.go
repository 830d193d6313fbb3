package config

import "time"

const (
	defaultPort             = 8080
	defaultRequestTimeout   = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultQueryTimeout     = 5 * time.Second
	defaultPasswordHashCost = 10
	defaultListMaxSize      = 50
)

// defaultConfig returns the values used for every field no other source
// has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: defaultPasswordHashCost,
			ListMaxSize:      defaultListMaxSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				QueryTimeout: defaultQueryTimeout,
			},
		},
		Server: Server{
			Port:            defaultPort,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
