package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/movisimple/internal/app"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
)

func (h *Handler) calculateRoute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, app.MsgInvalidEndpoint, http.StatusBadRequest)
		return
	}

	result, err := h.services.RouteService.CalculateRoute(r.Context(), request)
	if err != nil {
		respondWithError(w, r, err, app.MsgRouteCalculationFailed)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) network(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.RouteService.Network(r.Context()), http.StatusOK)
}
