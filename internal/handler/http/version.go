package http

import (
	"net/http"

	"github.com/MKhiriev/movisimple/internal/app"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
)

const healthStatusOK = "OK"

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK, Message: app.MsgServerIsUp}, http.StatusOK)
}
