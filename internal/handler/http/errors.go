// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
)

const msgNotFound = "not found"

// writeError answers with a JSON error body carrying the request trace id.
func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message, TraceID: traceID}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error response")
	}
}

// respondWithError maps err to a status and message. Errors without a
// dedicated mapping are answered with 500 and fallback.
func respondWithError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)

	message := fallback
	if status != http.StatusInternalServerError {
		message = messageFromError(err, fallback)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	writeError(w, r, message, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, msgNotFound, http.StatusNotFound)
}
