package cli

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/repstreak/internal/config"
	"github.com/alexanderramin/repstreak/internal/db"
	"github.com/alexanderramin/repstreak/internal/repository"
	"github.com/alexanderramin/repstreak/internal/service"
	"github.com/alexanderramin/repstreak/internal/teatest"
	"github.com/alexanderramin/repstreak/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a tracker over a fresh in-memory journal. The clock is fixed
// to testutil.Day(0) and the countdown ticks every millisecond.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testAppWithUoW(t, repository.NewSQLiteSessionRepo(database), testutil.NewTestUoW(database))
}

func testAppWithUoW(t *testing.T, sessions repository.SessionRepo, uow db.UnitOfWork) *App {
	t.Helper()
	cfg := config.Default()
	cfg.TickInterval = time.Millisecond
	return &App{
		Tracker: service.NewTrackerService(sessions, uow),
		Config:  cfg,
		Clock:   testutil.FixedClock(testutil.Day(0)),
	}
}

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sets a terminal size and drains Init,
// which loads the first stats snapshot synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(100, 40), teatest.WithCmdTimeout(100*time.Millisecond))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting checks both the model flag and tea.QuitMsg seen by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output without ANSI styling.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

// PlainView returns the rendered screen without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// Countdown returns the active countdown view, or nil.
func (d *TestDriver) Countdown() *countdownView {
	m := d.appModel()
	v, _ := m.activeView().(*countdownView)
	return v
}
