package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/mock"
	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/models"
)

const (
	testToken  = "good-token"
	testUserID = "0195f0b4-1111-7000-8000-000000000001"
)

// newTestHandler builds a Handler over mocked services.
func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService, *mock.MockListService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	lists := mock.NewMockListService(ctrl)
	services := &service.Services{AuthService: auth, ListService: lists}

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop()), auth, lists
}

// expectValidToken makes testToken resolve to testUserID.
func expectValidToken(auth *mock.MockAuthService) {
	auth.EXPECT().VerifyToken(gomock.Any(), testToken).Return(models.Token{SignedString: testToken, UserID: testUserID}, nil)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
