package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-lists/internal/app"
	"github.com/MKhiriev/go-user-lists/internal/utils"
)

// auth enforces bearer token authentication.
//
// It reads the "Authorization: Bearer <token>" header, verifies the token
// via [service.AuthService.VerifyToken] and stores the caller id in the
// request context (see [utils.WithUserID]) before delegating to next.
//
// A missing, malformed or invalid token is answered with 401 and an
// {"error": ...} envelope; the request never reaches the store.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, errorEnvelope, app.MsgUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err), errorEnvelope, app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, errorEnvelope, app.MsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
