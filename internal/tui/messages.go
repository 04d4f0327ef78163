package tui

import (
	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
)

type authDoneMsg struct {
	user models.UserInfo
	err  error
}

type networkLoadedMsg struct {
	network models.Network
	err     error
}

type routeCalculatedMsg struct {
	route models.Route
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type healthTickMsg struct{}

type healthStatusMsg struct {
	status workers.HealthStatus
}
