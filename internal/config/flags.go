package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-p port to listen on
//	-host interface to bind
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-query-timeout per store call timeout (e.g. "5s")
//	-k token signing key
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g. "1h"), 0 disables expiry
//	-hash-cost bcrypt cost
//	-list-max-size maximum ids per list
//	-request-timeout request timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.Server.Port, "p", 0, "Port to listen on")
	fs.StringVar(&cfg.Server.Host, "host", "", "Interface to bind")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.DurationVar(&cfg.Storage.DB.QueryTimeout, "query-timeout", 0, "Store call timeout (e.g., 5s)")
	fs.StringVar(&cfg.App.TokenSignKey, "k", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&cfg.App.PasswordHashCost, "hash-cost", 0, "bcrypt cost")
	fs.IntVar(&cfg.App.ListMaxSize, "list-max-size", 0, "Maximum ids per list")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
