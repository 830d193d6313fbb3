package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-lists/internal/app"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), messageEnvelope, app.MsgInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, messageEnvelope, app.MsgRegistrationFailed)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user registered")

	response := models.MessageResponse{Message: fmt.Sprintf(app.MsgUserRegisteredF, user.Username)}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(w, r, &credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), messageEnvelope, app.MsgInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, credentials)
	if err != nil {
		writeError(w, r, err, messageEnvelope, app.MsgLoginFailed)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user.UserID)
	if err != nil {
		writeError(w, r, err, messageEnvelope, app.MsgLoginFailed)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user logged in")

	response := models.LoginResponse{Message: app.MsgLoginSuccessful, Token: token.SignedString}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
