// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_TokenFromConfig(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:1", Token: " abc "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "secret", req.Password2)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User alice successfully registered"})
	}))
	defer srv.Close()

	msg, err := newTestAdapter(t, srv.URL).Register(context.Background(),
		models.RegisterRequest{Username: "alice", Password: "secret", Password2: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "User alice successfully registered", msg)
}

func TestRegister_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Message: "User Name already taken"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "x"})

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.Contains(t, err.Error(), "User Name already taken")
}

func TestLogin_StoresToken(t *testing.T) {
	token, err := utils.GenerateJWTToken("user-1", "key", "", 0)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "login successful", Token: token.SignedString})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, token.SignedString, got.SignedString)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestLogin_GarbageToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "login successful", Token: "garbage"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── lists ────────────────────────────────────────────────────────────────────

func TestLists_RequestShape(t *testing.T) {
	type call struct {
		name   string
		invoke func(a ServerAdapter) ([]string, error)
		method string
		path   string
	}
	ctx := context.Background()

	calls := []call{
		{"favourites", func(a ServerAdapter) ([]string, error) { return a.Favourites(ctx) }, http.MethodGet, "/api/user/favourites"},
		{"add favourite", func(a ServerAdapter) ([]string, error) { return a.AddFavourite(ctx, "42") }, http.MethodPut, "/api/user/favourites/42"},
		{"remove favourite", func(a ServerAdapter) ([]string, error) { return a.RemoveFavourite(ctx, "42") }, http.MethodDelete, "/api/user/favourites/42"},
		{"history", func(a ServerAdapter) ([]string, error) { return a.History(ctx) }, http.MethodGet, "/api/user/history"},
		{"add history", func(a ServerAdapter) ([]string, error) { return a.AddHistory(ctx, "a/b") }, http.MethodPut, "/api/user/history/a%2Fb"},
		{"remove history", func(a ServerAdapter) ([]string, error) { return a.RemoveHistory(ctx, "7") }, http.MethodDelete, "/api/user/history/7"},
	}

	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, c.method, r.Method)
				assert.Equal(t, c.path, r.URL.EscapedPath())
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				writeJSON(t, w, http.StatusOK, []string{"x"})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")

			items, err := c.invoke(a)
			require.NoError(t, err)
			assert.Equal(t, []string{"x"}, items)
		})
	}
}

func TestLists_EmptyIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []string{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	items, err := a.History(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLists_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.Favourites(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"error":"token is invalid"}`, wantErr: ErrUnauthorized, wantMessage: "token is invalid"},
		{name: "422", status: http.StatusUnprocessableEntity, body: `{"error":"list is full"}`, wantErr: ErrUnprocessable, wantMessage: "list is full"},
		{name: "404", status: http.StatusNotFound, body: `{"error":"not found"}`, wantErr: ErrNotFound, wantMessage: "not found"},
		{name: "500 empty body", status: http.StatusInternalServerError, body: "", wantErr: ErrInternalServerError, wantMessage: "Internal Server Error"},
		{name: "503", status: http.StatusServiceUnavailable, body: `{"error":"store unavailable"}`, wantErr: ErrServiceUnavailable, wantMessage: "store unavailable"},
		{name: "504 plain text", status: http.StatusGatewayTimeout, body: "upstream slow", wantErr: ErrGatewayTimeout, wantMessage: "upstream slow"},
		{name: "418", status: http.StatusTeapot, body: "", wantMessage: "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")

			_, err := a.Favourites(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}
