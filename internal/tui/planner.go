package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type selector int

const (
	selectOrigin selector = iota
	selectDestination
)

// plannerModel picks origin and destination among the network stations and
// shows the last calculated route.
type plannerModel struct {
	network models.Network
	loading bool

	// indexes into network.Stations
	origin      int
	destination int
	active      selector

	calculating bool
	spinner     spinner.Model
	route       *models.Route

	showNetwork bool
	status      string
}

func newPlannerModel() plannerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return plannerModel{spinner: s, loading: true}
}

// setNetwork installs a freshly loaded network, keeping selections in range
// and preferring distinct stations.
func (m plannerModel) setNetwork(network models.Network) plannerModel {
	m.network = network
	m.loading = false
	m.route = nil

	n := len(network.Stations)
	if m.origin >= n {
		m.origin = 0
	}
	if m.destination >= n || m.destination == m.origin {
		m.destination = 0
		if n > 1 && m.origin == 0 {
			m.destination = n - 1
		}
	}
	return m
}

func (m plannerModel) ready() bool {
	return !m.loading && len(m.network.Stations) > 1
}

func (m plannerModel) originStation() int {
	return m.network.Stations[m.origin]
}

func (m plannerModel) destinationStation() int {
	return m.network.Stations[m.destination]
}

// step moves the active selector by delta, wrapping around.
func (m plannerModel) step(delta int) plannerModel {
	n := len(m.network.Stations)
	if n == 0 {
		return m
	}

	idx := &m.origin
	if m.active == selectDestination {
		idx = &m.destination
	}
	*idx = ((*idx+delta)%n + n) % n
	m.route = nil
	return m
}

func (m plannerModel) toggleSelector() plannerModel {
	if m.active == selectOrigin {
		m.active = selectDestination
	} else {
		m.active = selectOrigin
	}
	return m
}

func (m plannerModel) swap() plannerModel {
	m.origin, m.destination = m.destination, m.origin
	m.route = nil
	return m
}

func (m plannerModel) View(user models.UserInfo, health workers.HealthStatus) string {
	if m.showNetwork {
		return m.networkView()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Passenger: %s <%s>\n", user.Name, user.Email)
	b.WriteString("Server: " + renderHealth(health) + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading network...\n")
	case len(m.network.Stations) < 2:
		b.WriteString("The network has no stations to choose from. Press r to reload.\n")
	default:
		b.WriteString(m.selectorView("From", m.originStation(), m.active == selectOrigin))
		b.WriteString("    ")
		b.WriteString(m.selectorView("To", m.destinationStation(), m.active == selectDestination))
		b.WriteString("\n\n")

		switch {
		case m.calculating:
			b.WriteString(m.spinner.View() + " Calculating...\n")
		case m.route != nil:
			b.WriteString("Route: " + formatPath(m.route.Path) + "\n")
			b.WriteString("Time:  " + formatSeconds(m.route.TotalTime) + "\n")
			b.WriteString("Cost:  " + formatCost(m.route.Cost) + "\n")
		default:
			fmt.Fprintf(&b, "Tariff: %s per second\n", formatCost(m.network.TariffPerUnit))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ROUTE PLANNER", b.String(),
		"↑/↓: station  tab: from/to  s: swap  enter: calculate  c: copy  n: network  r: reload  l: log out  q: quit")
}

func (m plannerModel) selectorView(label string, station int, active bool) string {
	value := fmt.Sprintf("< %d >", station)
	if active {
		value = selectedStyle.Render(value)
	}
	return label + ": " + value
}

func (m plannerModel) networkView() string {
	var b strings.Builder

	stations := make([]string, len(m.network.Stations))
	for i, s := range m.network.Stations {
		stations[i] = fmt.Sprint(s)
	}
	b.WriteString("Stations: " + strings.Join(stations, ", ") + "\n\n")

	b.WriteString("Connections:\n")
	for _, c := range m.network.Connections {
		fmt.Fprintf(&b, "  %d ─ %d  %s\n", c.From, c.To, formatSeconds(c.Weight))
	}
	fmt.Fprintf(&b, "\nTariff: %s per second\n", formatCost(m.network.TariffPerUnit))

	return renderPage("NETWORK", b.String(), "n / esc: back")
}

func renderHealth(status workers.HealthStatus) string {
	switch status {
	case workers.HealthUp:
		return onlineStyle.Render(status.String())
	case workers.HealthDown:
		return offlineStyle.Render(status.String())
	default:
		return helpStyle.Render(status.String())
	}
}
