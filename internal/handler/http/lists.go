package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-lists/internal/app"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/service"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

// itemIDParam is the URL parameter naming the list entry.
const itemIDParam = "id"

// getList returns the handler of GET /api/user/{kind}.
func (h *Handler) getList(kind models.ListKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserIDInContext, errorEnvelope, app.MsgUnauthorized)
			return
		}

		items, err := h.services.ListService.GetList(r.Context(), userID, kind)
		if err != nil {
			writeError(w, r, err, errorEnvelope, fmt.Sprintf(app.MsgUnableToGetListF, kind, userID))
			return
		}

		writeItems(w, r, items)
	}
}

// addToList returns the handler of PUT /api/user/{kind}/{id}.
func (h *Handler) addToList(kind models.ListKind) http.HandlerFunc {
	return h.updateList(kind, h.services.ListService.AddToList)
}

// removeFromList returns the handler of DELETE /api/user/{kind}/{id}.
func (h *Handler) removeFromList(kind models.ListKind) http.HandlerFunc {
	return h.updateList(kind, h.services.ListService.RemoveFromList)
}

type listUpdate func(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error)

func (h *Handler) updateList(kind models.ListKind, update listUpdate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserIDInContext, errorEnvelope, app.MsgUnauthorized)
			return
		}

		fallback := fmt.Sprintf(app.MsgUnableToUpdateListF, kind, userID)

		itemID, err := itemIDFromRequest(r)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidItemID, err), errorEnvelope, fallback)
			return
		}

		items, err := update(r.Context(), userID, kind, itemID)
		if err != nil {
			writeError(w, r, err, errorEnvelope, fallback)
			return
		}

		writeItems(w, r, items)
	}
}

// itemIDFromRequest returns the decoded item id. chi matches on RawPath when
// it is set, and only then is the parameter still percent-encoded.
func itemIDFromRequest(r *http.Request) (string, error) {
	itemID := chi.URLParam(r, itemIDParam)
	if r.URL.RawPath == "" {
		return itemID, nil
	}
	return url.PathUnescape(itemID)
}

func writeItems(w http.ResponseWriter, r *http.Request, items []string) {
	if items == nil {
		items = []string{}
	}

	if _, err := utils.WriteJSON(w, items, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing list response")
	}
}
