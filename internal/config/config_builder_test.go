package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/lists"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because no sign key is configured.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while unset fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{TokenSignKey: "from-env"},
			Server: Server{Port: 9000},
		},
		&StructuredConfig{
			App:    App{TokenSignKey: "from-flags", TokenIssuer: "from-flags"},
			Server: Server{Port: 9100, Host: "127.0.0.1"},
		},
	)
	b.withDefaults()
	b.configs[len(b.configs)-1].Storage.DB.DSN = "file:test.db"

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "from-flags", cfg.App.TokenIssuer)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 50, cfg.App.ListMaxSize)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_Values verifies the documented default values.
func TestWithDefaults_Values(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)

	d := b.configs[0]
	assert.Equal(t, 8080, d.Server.Port)
	assert.Equal(t, 10*time.Second, d.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, d.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, d.Storage.DB.QueryTimeout)
	assert.Equal(t, DriverPostgres, d.Storage.DB.Driver)
	assert.Equal(t, 10, d.App.PasswordHashCost)
	assert.Equal(t, 50, d.App.ListMaxSize)
	assert.Empty(t, d.App.TokenSignKey)
	assert.Empty(t, d.Storage.DB.DSN)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

// TestWithEnv_OverridesFlags verifies that the environment takes precedence
// over command-line flags.
func TestWithEnv_OverridesFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"JWT_SECRET":   "env-secret",
		"DATABASE_URI": "postgres://env/lists",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-k", "flag-secret", "-p", "9999"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env/lists", cfg.Storage.DB.DSN)
	assert.Equal(t, 9999, cfg.Server.Port)
}

// TestWithFlags_ErrorIsCollected verifies that a flag parse error is kept on
// the builder and surfaces from build.
func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)

	_, err := b.build()
	assert.Error(t, err)
}

// TestWithEnv_ErrorIsCollected verifies that an env parse error is kept on
// the builder.
func TestWithEnv_ErrorIsCollected(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "eighty"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFileFromEarlierSource verifies that the file named by an
// earlier source is read and fills fields the earlier sources left empty.
func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"jwt_secret": "json-secret", "list_max_size": 7},
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite3", "dsn": "file:json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 7, cfg.App.ListMaxSize)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFile verifies that a configured but missing file is an
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_FirstPathWins verifies that the JSON path of the earliest
// source is used when several sources name one.
func TestWithJSON_FirstPathWins(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"jwt_secret": "from-env-file"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"jwt_secret": "from-flag-file"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagPath},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-env-file", b.configs[2].App.TokenSignKey)
}

// ── validate ──────────────────────────────────────────────────────────────────

// TestValidate covers each invariant checked on the merged configuration.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrMissingTokenSignKey},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrMissingDSN},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrUnsupportedDriver},
		{name: "port zero", mutate: func(cfg *StructuredConfig) { cfg.Server.Port = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "port too big", mutate: func(cfg *StructuredConfig) { cfg.Server.Port = 70000 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative request timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "negative query timeout", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.QueryTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "hash cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too high", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 }, wantErr: ErrInvalidAppConfigs},
		{name: "list size zero", mutate: func(cfg *StructuredConfig) { cfg.App.ListMaxSize = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
