package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/movisimple/internal/app"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		respondWithError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Str("email", registered.Email).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{User: registered.Info(), Message: app.MsgRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		respondWithError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Str("email", found.Email).Msg("user logged in")
	utils.WriteJSON(w, models.AuthResponse{User: found.Info(), Message: app.MsgLoggedIn}, http.StatusOK)
}
