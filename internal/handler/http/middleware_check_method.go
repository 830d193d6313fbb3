// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-lists/internal/app"
	"github.com/MKhiriev/go-user-lists/internal/utils"
	"github.com/MKhiriev/go-user-lists/models"
)

// notFound answers unknown paths with 404 and a JSON error envelope.
//
// It is registered as both the NotFound and the MethodNotAllowed handler of
// the router: chi's default for a known path with an unsupported method is
// 405, which would reveal which methods the path accepts. Responding 404
// instead keeps the two cases indistinguishable.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
