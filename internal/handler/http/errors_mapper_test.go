package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "invalid token", err: fmt.Errorf("verify: %w", service.ErrTokenIsInvalid), want: http.StatusUnauthorized},
		{name: "owner gone", err: store.ErrNoUserWasFound, want: http.StatusUnauthorized},
		{name: "no sign key", err: service.ErrTokenSignKeyNotSet, want: http.StatusInternalServerError},
		{name: "store unavailable", err: store.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
		{name: "store timeout", err: store.ErrStoreTimeout, want: http.StatusGatewayTimeout},
		{name: "list full", err: store.ErrListIsFull, want: http.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("boom"), want: http.StatusUnprocessableEntity},
		// earlier entries win when an error matches several
		{name: "owner gone and timeout", err: errors.Join(store.ErrStoreTimeout, store.ErrNoUserWasFound), want: http.StatusUnauthorized},
		{name: "unavailable and timeout", err: errors.Join(store.ErrStoreTimeout, store.ErrStoreUnavailable), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
