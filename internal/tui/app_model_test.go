package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/movisimple/internal/mock"
	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNetwork = models.Network{
	Stations: []int{1, 2, 3, 4, 5, 6},
	Connections: []models.Connection{
		{From: 1, To: 2, Weight: 10},
		{From: 2, To: 4, Weight: 8},
	},
	TariffPerUnit: 0.5,
}

type tuiMocks struct {
	auth  *mock.MockClientAuthService
	route *mock.MockClientRouteService
}

func newTestModel(t *testing.T) (appModel, tuiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := tuiMocks{
		auth:  mock.NewMockClientAuthService(ctrl),
		route: mock.NewMockClientRouteService(ctrl),
	}
	svcs := &service.ClientServices{AuthService: m.auth, RouteService: m.route}

	return newAppModel(context.Background(), svcs, nil, models.NewAppBuildInfo("v1.0.0", "", "")), m
}

// plannerModelWithNetwork returns a logged-in model showing the planner.
func plannerModelWithNetwork(t *testing.T) (appModel, tuiMocks) {
	t.Helper()
	model, mocks := newTestModel(t)
	model.user = models.UserInfo{Name: "Alice", Email: "alice@example.com"}
	model.currentScreen = screenPlanner
	model.planner = model.planner.setNetwork(testNetwork)
	return model, mocks
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func TestWelcome_Navigation(t *testing.T) {
	model, _ := newTestModel(t)

	model, _ = update(t, model, keyPress(tea.KeyEnter))
	assert.Equal(t, screenLogin, model.currentScreen)

	model, _ = update(t, model, keyPress(tea.KeyEsc))
	assert.Equal(t, screenWelcome, model.currentScreen)

	model, _ = update(t, model, keyPress(tea.KeyDown))
	model, _ = update(t, model, keyPress(tea.KeyEnter))
	assert.Equal(t, screenRegister, model.currentScreen)
}

func TestWelcome_BuildInfo(t *testing.T) {
	model, _ := newTestModel(t)

	model, _ = update(t, model, runes("v"))
	require.True(t, model.showBuildInfo)
	assert.Contains(t, model.View(), "v1.0.0")
	assert.Contains(t, model.View(), "N/A")

	model, _ = update(t, model, keyPress(tea.KeyEsc))
	assert.False(t, model.showBuildInfo)
}

func TestWelcome_Quit(t *testing.T) {
	model, _ := newTestModel(t)

	model, cmd := update(t, model, runes("q"))

	assert.True(t, model.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlC_QuitsFromForms(t *testing.T) {
	model, _ := newTestModel(t)
	model.currentScreen = screenLogin

	model, cmd := update(t, model, keyPress(tea.KeyCtrlC))

	assert.True(t, model.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLogin_RequiresFields(t *testing.T) {
	model, _ := newTestModel(t)
	model.currentScreen = screenLogin

	model, cmd := update(t, model, keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	require.True(t, model.showError)
	assert.Equal(t, "Email and password are required", model.errorOverlay.message)

	model, _ = update(t, model, keyPress(tea.KeyEnter))
	assert.False(t, model.showError)
}

// TestLogin_Success walks the login form into the planner.
func TestLogin_Success(t *testing.T) {
	model, mocks := newTestModel(t)
	model.currentScreen = screenLogin

	model, _ = update(t, model, runes("alice@example.com"))
	model, _ = update(t, model, keyPress(tea.KeyTab))
	// "q" is typed, not treated as quit
	model, _ = update(t, model, runes("qwerty"))

	mocks.auth.EXPECT().
		Login(gomock.Any(), models.User{Email: "alice@example.com", Password: "qwerty"}).
		Return(models.UserInfo{Name: "Alice", Email: "alice@example.com"}, nil)

	model, cmd := update(t, model, keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, model.login.submitting)
	assert.False(t, model.quitByUser)

	model, cmd = update(t, model, cmd())
	assert.Equal(t, screenPlanner, model.currentScreen)
	assert.Equal(t, "Alice", model.user.Name)
	assert.True(t, model.planner.loading)

	mocks.route.EXPECT().Network(gomock.Any()).Return(testNetwork, nil)
	require.NotNil(t, cmd)
	model, _ = update(t, model, cmd())

	require.True(t, model.planner.ready())
	assert.Equal(t, 1, model.planner.originStation())
	assert.Equal(t, 6, model.planner.destinationStation())
}

func TestLogin_WrongPassword(t *testing.T) {
	model, _ := newTestModel(t)
	model.currentScreen = screenLogin
	model.login.submitting = true

	model, _ = update(t, model, authDoneMsg{err: service.ErrWrongPassword})

	assert.Equal(t, screenLogin, model.currentScreen)
	assert.False(t, model.login.submitting)
	assert.True(t, model.showError)
	assert.Equal(t, "Invalid email or password", model.errorOverlay.message)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	model, _ := newTestModel(t)
	model.currentScreen = screenRegister

	for _, text := range []string{"Alice", "alice@example.com", "secret", "other"} {
		model, _ = update(t, model, runes(text))
		model, _ = update(t, model, keyPress(tea.KeyTab))
	}
	model, cmd := update(t, model, keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", model.errorOverlay.message)
}

func TestRegister_Success(t *testing.T) {
	model, mocks := newTestModel(t)
	model.currentScreen = screenRegister

	for _, text := range []string{"Alice", "alice@example.com", "secret", "secret"} {
		model, _ = update(t, model, runes(text))
		model, _ = update(t, model, keyPress(tea.KeyTab))
	}

	mocks.auth.EXPECT().
		Register(gomock.Any(), models.User{Name: "Alice", Email: "alice@example.com", Password: "secret"}).
		Return(models.UserInfo{Name: "Alice", Email: "alice@example.com"}, nil)

	model, cmd := update(t, model, keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	model, _ = update(t, model, cmd())

	assert.Equal(t, screenPlanner, model.currentScreen)
	assert.Equal(t, "alice@example.com", model.user.Email)
}

func TestPlanner_SelectAndCalculate(t *testing.T) {
	model, mocks := plannerModelWithNetwork(t)

	// destination: 6 -> 4
	model, _ = update(t, model, keyPress(tea.KeyTab))
	model, _ = update(t, model, keyPress(tea.KeyUp))
	model, _ = update(t, model, keyPress(tea.KeyUp))
	require.Equal(t, 1, model.planner.originStation())
	require.Equal(t, 4, model.planner.destinationStation())

	model, cmd := update(t, model, keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, model.planner.calculating)

	want := models.Route{Path: []int{1, 2, 4}, TotalTime: 18, Cost: 9}
	mocks.route.EXPECT().Calculate(gomock.Any(), 1, 4).Return(want, nil)
	model, _ = update(t, model, model.cmdCalculate(1, 4)())

	assert.False(t, model.planner.calculating)
	require.NotNil(t, model.planner.route)
	assert.Equal(t, want, *model.planner.route)

	view := model.View()
	assert.Contains(t, view, "Route: 1 → 2 → 4")
	assert.Contains(t, view, "18 s")
	assert.Contains(t, view, "9.00")
}

func TestPlanner_SelectionWraps(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)

	model, _ = update(t, model, keyPress(tea.KeyUp))

	assert.Equal(t, 6, model.planner.originStation())
}

func TestPlanner_SameStation(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)
	model.planner.destination = model.planner.origin

	model, cmd := update(t, model, keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, model.planner.calculating)
	assert.Equal(t, "Choose two different stations", model.errorOverlay.message)
}

func TestPlanner_NoRoute(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)
	model.planner.calculating = true

	model, _ = update(t, model, routeCalculatedMsg{err: service.ErrNoRouteFound})

	assert.False(t, model.planner.calculating)
	assert.Nil(t, model.planner.route)
	assert.Equal(t, "No route available between these stations", model.errorOverlay.message)
}

func TestPlanner_Swap(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)

	model, _ = update(t, model, runes("s"))

	assert.Equal(t, 6, model.planner.originStation())
	assert.Equal(t, 1, model.planner.destinationStation())
}

func TestPlanner_Copy(t *testing.T) {
	var copied string
	orig := clipboardWriter
	clipboardWriter = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriter = orig })

	model, _ := plannerModelWithNetwork(t)

	// nothing to copy yet
	_, cmd := update(t, model, runes("c"))
	assert.Nil(t, cmd)

	model.planner.route = &models.Route{Path: []int{1, 6}, TotalTime: 25, Cost: 12.5}
	model, cmd = update(t, model, runes("c"))
	require.NotNil(t, cmd)
	model, _ = update(t, model, cmd())

	assert.Equal(t, "MoviSimple route 1 → 6, time 25 s, cost 12.50", copied)
	assert.Equal(t, "Copied!", model.planner.status)

	model, _ = update(t, model, clearStatusMsg{})
	assert.Empty(t, model.planner.status)
}

func TestPlanner_CopyFailure(t *testing.T) {
	orig := clipboardWriter
	clipboardWriter = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWriter = orig })

	model, _ := plannerModelWithNetwork(t)
	model.planner.route = &models.Route{Path: []int{1, 6}, TotalTime: 25, Cost: 12.5}

	model, cmd := update(t, model, runes("c"))
	model, _ = update(t, model, cmd())

	assert.True(t, model.showError)
	assert.Contains(t, model.errorOverlay.message, "no clipboard")
}

func TestPlanner_NetworkView(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)

	model, _ = update(t, model, runes("n"))
	require.True(t, model.planner.showNetwork)
	view := model.View()
	assert.Contains(t, view, "NETWORK")
	assert.Contains(t, view, "1 ─ 2  10 s")

	// selection keys are ignored while the network is shown
	model, _ = update(t, model, keyPress(tea.KeyDown))
	assert.Equal(t, 1, model.planner.originStation())

	model, _ = update(t, model, keyPress(tea.KeyEsc))
	assert.False(t, model.planner.showNetwork)
}

func TestPlanner_NetworkLoadFailure(t *testing.T) {
	model, _ := newTestModel(t)
	model.currentScreen = screenPlanner

	model, _ = update(t, model, networkLoadedMsg{err: service.ErrServerUnavailable})

	assert.False(t, model.planner.loading)
	assert.False(t, model.planner.ready())
	assert.Equal(t, msgServerUnavailable, model.errorOverlay.message)
}

func TestPlanner_Reload(t *testing.T) {
	model, mocks := plannerModelWithNetwork(t)

	model, cmd := update(t, model, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, model.planner.loading)

	mocks.route.EXPECT().Network(gomock.Any()).Return(testNetwork, nil)
	model, _ = update(t, model, cmd())
	assert.True(t, model.planner.ready())
}

func TestPlanner_Logout(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)

	model, _ = update(t, model, runes("l"))

	assert.Equal(t, screenWelcome, model.currentScreen)
	assert.Empty(t, model.user.Email)
	assert.False(t, model.quitByUser)
}

type fixedHealth workers.HealthStatus

func (f fixedHealth) Status() workers.HealthStatus { return workers.HealthStatus(f) }

func TestHealth_Refresh(t *testing.T) {
	model, _ := plannerModelWithNetwork(t)
	model.health = fixedHealth(workers.HealthDown)

	cmd := model.cmdRefreshHealth()
	require.NotNil(t, cmd)
	model, _ = update(t, model, cmd())

	assert.Equal(t, workers.HealthDown, model.healthStatus)
	assert.Contains(t, model.View(), "offline")
}

func TestHealth_NoSource(t *testing.T) {
	model, _ := newTestModel(t)

	assert.Nil(t, model.cmdRefreshHealth())
	assert.Contains(t, model.planner.View(model.user, model.healthStatus), "checking")
}
