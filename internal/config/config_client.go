package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API server.
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"CLIENT_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT" envDefault:"15s"`

	// Token is a previously issued bearer token. When set the client skips
	// logging in before protected calls.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter

	// Username and Password are used to log in when no token is configured.
	Username string `env:"CLIENT_USERNAME"`
	Password string `env:"CLIENT_PASSWORD"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and the given command-line flags. Flags override the
// environment. The remaining non-flag arguments are returned as well.
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "API server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Adapter.Token, "token", cfg.Adapter.Token, "Bearer token")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "Username")
	fs.StringVar(&cfg.Password, "pw", cfg.Password, "Password")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
