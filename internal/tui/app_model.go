package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenPlanner
)

const (
	healthRefreshInterval = time.Second
	statusLifetime        = 2 * time.Second
)

// clipboardWriter is replaced in tests.
var clipboardWriter = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	health    HealthSource
	buildInfo models.AppBuildInfo

	currentScreen screen

	welcome  welcomeModel
	login    formModel
	register formModel
	planner  plannerModel

	user         models.UserInfo
	healthStatus workers.HealthStatus

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, health HealthSource, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		health:        health,
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		planner:       newPlannerModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRefreshHealth(), cmdHealthTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case healthTickMsg:
		return m, tea.Batch(m.cmdRefreshHealth(), cmdHealthTick())
	case healthStatusMsg:
		m.healthStatus = msg.status
		return m, nil
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.login = newLoginModel()
		m.register = newRegisterModel()
		m.planner = newPlannerModel()
		m.currentScreen = screenPlanner
		return m, m.cmdLoadNetwork()
	case networkLoadedMsg:
		if msg.err != nil {
			m.planner.loading = false
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.planner = m.planner.setNetwork(msg.network)
		return m, nil
	case routeCalculatedMsg:
		m.planner.calculating = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.planner.route = &msg.route
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.planner.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.planner.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.planner.calculating {
			var cmd tea.Cmd
			m.planner.spinner, cmd = m.planner.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenPlanner:
		return m.updatePlanner(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.currentScreen == screenLogin:
		body = m.login.View()
	case m.currentScreen == screenRegister:
		body = m.register.View()
	case m.currentScreen == screenPlanner:
		body = m.planner.View(m.user, m.healthStatus)
	default:
		body = m.welcome.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == welcomeLogin {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.next):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			user, problem := loginUser(m.login)
			if problem != "" {
				m.showErrorf(problem)
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(user)
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateFocused(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.next):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			user, problem := registerUser(m.register)
			if problem != "" {
				m.showErrorf(problem)
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(user)
		}
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.updateFocused(msg)
	return m, cmd
}

func (m appModel) updatePlanner(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.planner.showNetwork {
		if key.Matches(keyMsg, keys.network) || key.Matches(keyMsg, keys.esc) {
			m.planner.showNetwork = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.user = models.UserInfo{}
		m.planner = newPlannerModel()
		m.currentScreen = screenWelcome
		return m, nil
	case key.Matches(keyMsg, keys.reload):
		m.planner.loading = true
		return m, m.cmdLoadNetwork()
	}

	if !m.planner.ready() || m.planner.calculating {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.planner = m.planner.step(-1)
	case key.Matches(keyMsg, keys.down):
		m.planner = m.planner.step(1)
	case key.Matches(keyMsg, keys.side), key.Matches(keyMsg, keys.backtab):
		m.planner = m.planner.toggleSelector()
	case key.Matches(keyMsg, keys.swap):
		m.planner = m.planner.swap()
	case key.Matches(keyMsg, keys.network):
		m.planner.showNetwork = true
	case key.Matches(keyMsg, keys.copy):
		if m.planner.route == nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(routeSummary(*m.planner.route))
	case key.Matches(keyMsg, keys.enter):
		if m.planner.originStation() == m.planner.destinationStation() {
			m.showErrorf(humanizeError(service.ErrInvalidEndpoint))
			return m, nil
		}
		m.planner.calculating = true
		m.planner.route = nil
		return m, tea.Batch(m.planner.spinner.Tick, m.cmdCalculate(m.planner.originStation(), m.planner.destinationStation()))
	}

	return m, nil
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		info, err := auth.Login(ctx, user)
		return authDoneMsg{user: info, err: err}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		info, err := auth.Register(ctx, user)
		return authDoneMsg{user: info, err: err}
	}
}

func (m appModel) cmdLoadNetwork() tea.Cmd {
	ctx := m.ctx
	svc := m.services.RouteService
	return func() tea.Msg {
		network, err := svc.Network(ctx)
		return networkLoadedMsg{network: network, err: err}
	}
}

func (m appModel) cmdCalculate(origin, destination int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RouteService
	return func() tea.Msg {
		r, err := svc.Calculate(ctx, origin, destination)
		return routeCalculatedMsg{route: r, err: err}
	}
}

func (m appModel) cmdRefreshHealth() tea.Cmd {
	if m.health == nil {
		return nil
	}
	health := m.health
	return func() tea.Msg {
		return healthStatusMsg{status: health.Status()}
	}
}

func cmdHealthTick() tea.Cmd {
	return tea.Tick(healthRefreshInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
