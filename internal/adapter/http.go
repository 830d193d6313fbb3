package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

const apiPrefix = "/api/user"

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the server at adapterCfg.HTTPAddress. A token from the configuration
// is stored right away.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register POSTs req to /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(apiPrefix + "/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

// Login POSTs credentials to /api/user/login and keeps the returned token.
// The user id is read from the token's "_id" claim without verifying the
// signature; only the server can do that.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post(apiPrefix + "/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	userID, err := utils.ParseUserIDFromJWT(result.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token: %w", err)
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", userID).Msg("logged in")

	return models.Token{SignedString: result.Token, UserID: userID}, nil
}

func (h *httpServerAdapter) Favourites(ctx context.Context) ([]string, error) {
	return h.getList(ctx, models.Favourites)
}

func (h *httpServerAdapter) AddFavourite(ctx context.Context, itemID string) ([]string, error) {
	return h.updateList(ctx, "PUT", models.Favourites, itemID)
}

func (h *httpServerAdapter) RemoveFavourite(ctx context.Context, itemID string) ([]string, error) {
	return h.updateList(ctx, "DELETE", models.Favourites, itemID)
}

func (h *httpServerAdapter) History(ctx context.Context) ([]string, error) {
	return h.getList(ctx, models.History)
}

func (h *httpServerAdapter) AddHistory(ctx context.Context, itemID string) ([]string, error) {
	return h.updateList(ctx, "PUT", models.History, itemID)
}

func (h *httpServerAdapter) RemoveHistory(ctx context.Context, itemID string) ([]string, error) {
	return h.updateList(ctx, "DELETE", models.History, itemID)
}

func (h *httpServerAdapter) getList(ctx context.Context, kind models.ListKind) ([]string, error) {
	return h.doList(ctx, "GET", apiPrefix+"/"+kind.String())
}

// updateList escapes itemID so ids containing "/" stay a single path
// segment.
func (h *httpServerAdapter) updateList(ctx context.Context, method string, kind models.ListKind, itemID string) ([]string, error) {
	return h.doList(ctx, method, apiPrefix+"/"+kind.String()+"/"+url.PathEscape(itemID))
}

func (h *httpServerAdapter) doList(ctx context.Context, method, path string) ([]string, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}

	var items []string

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetResult(&items).
		Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if items == nil {
		items = []string{}
	}
	return items, nil
}
