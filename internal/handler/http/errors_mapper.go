package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-lists/internal/app"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/internal/store"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

// errorStatusMap lists the errors that do not end in 422, the status every
// other failure of the API gets.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserIDInContext, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},

	{service.ErrTokenSignKeyNotSet, http.StatusInternalServerError},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{store.ErrStoreTimeout, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusUnprocessableEntity
}

// errorMessageMap holds the response text of errors whose message does not
// depend on the request.
var errorMessageMap = []struct {
	target  error
	message string
}{
	{ErrEmptyAuthorizationHeader, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, app.MsgUnauthorized},
	{ErrNoUserIDInContext, app.MsgUnauthorized},
	{service.ErrTokenIsInvalid, app.MsgTokenIsInvalid},
	{store.ErrNoUserWasFound, app.MsgUserNoLongerExists},
	{service.ErrTokenSignKeyNotSet, app.MsgInternalServerError},
	{store.ErrStoreUnavailable, app.MsgStoreUnavailable},
	{store.ErrStoreTimeout, app.MsgStoreTimeout},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameTaken},
	{store.ErrListIsFull, app.MsgListIsFull},
	{service.ErrPasswordsDoNotMatch, app.MsgPasswordsDoNotMatch},
	{service.ErrInvalidItemID, app.MsgInvalidItemID},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
}

// messageFromError picks the text shown to the caller for err. Errors
// without a fixed text get fallback.
func messageFromError(err error, fallback string) string {
	var credentialsErr *service.CredentialsError
	if errors.As(err, &credentialsErr) {
		return credentialsErr.Message
	}

	for _, m := range errorMessageMap {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	return fallback
}

// envelope wraps a failure message into the JSON body of a route family.
type envelope func(message string) any

// messageEnvelope is used by register and login: {"message": "..."}.
func messageEnvelope(message string) any {
	return models.MessageResponse{Message: message}
}

// errorEnvelope is used by the list routes and the auth middleware:
// {"error": "..."}.
func errorEnvelope(message string) any {
	return models.ErrorResponse{Error: message}
}

// writeError maps err to a status and a message and writes it in the
// envelope of the route family.
func writeError(w http.ResponseWriter, r *http.Request, err error, wrap envelope, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	if _, writeErr := utils.WriteJSON(w, wrap(message), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
