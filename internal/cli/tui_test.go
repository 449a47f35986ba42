package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/alexanderramin/repstreak/internal/testutil"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_MenuLoadsWithStats(t *testing.T) {
	app := testApp(t)
	_, err := app.Tracker.RecordSession(context.Background(), 30, domain.CategoryCardio, testutil.Day(0))
	require.NoError(t, err)

	d := NewTestDriver(t, app)

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.False(t, d.State().Busy)
	view := d.PlainView()
	assert.Contains(t, view, "Current Stats: 1 session, 30 min total, 1 day streak")
	assert.Contains(t, view, "1. Start Session (Manual)")
	assert.Contains(t, view, "6. Exit")
}

func TestTUI_ViewStats(t *testing.T) {
	app := testApp(t)
	_, err := app.Tracker.RecordSession(context.Background(), 45, domain.CategoryUpperBody, testutil.Day(0))
	require.NoError(t, err)
	d := NewTestDriver(t, app)

	d.Choose(2)

	out := d.LastOutput()
	assert.Contains(t, out, "SESSION STATISTICS")
	assert.Contains(t, out, "Total Sessions: 1")
	assert.Contains(t, out, "Upper Body")
	assert.False(t, d.State().Busy)
}

func TestTUI_ViewHistoryEmpty(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Choose(3)

	assert.Contains(t, d.LastOutput(), "No sessions recorded yet.")
}

func TestTUI_InvalidDigitShowsError(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Choose(9)
	assert.Contains(t, d.LastOutput(), "Invalid option. Please select 1-6.")

	d.PressEsc()
	assert.Empty(t, d.LastOutput())
	assert.Equal(t, ViewMenu, d.ActiveViewID())
}

func TestTUI_CursorSelectsWithEnter(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressDown()
	d.PressEnter()

	assert.Contains(t, d.LastOutput(), "SESSION HISTORY")
}

func TestTUI_QuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		press func(d *TestDriver)
	}{
		{"q", func(d *TestDriver) { d.PressKey('q') }},
		{"exit entry", func(d *TestDriver) { d.Choose(6) }},
		{"ctrl+c", func(d *TestDriver) { d.PressCtrlC() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewTestDriver(t, testApp(t))
			tc.press(d)
			assert.True(t, d.IsQuitting())
		})
	}
}

func TestTUI_FormsPushAndCancel(t *testing.T) {
	for _, choice := range []int{1, 4, 5} {
		d := NewTestDriver(t, testApp(t))

		d.Choose(choice)
		require.Equal(t, ViewForm, d.ActiveViewID(), "choice %d", choice)
		assert.Equal(t, 2, d.ViewStackLen())

		d.PressEsc()
		assert.Equal(t, ViewMenu, d.ActiveViewID(), "choice %d", choice)
		assert.Equal(t, 1, d.ViewStackLen())
		assert.Contains(t, d.LastOutput(), "Cancelled.")
	}
}

func TestTUI_QDoesNotQuitInsideForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Choose(4)
	d.PressKey('q')

	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewForm, d.ActiveViewID())
}

func TestTUI_CountdownRunsToCompletionAndRecords(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Send(pushViewMsg{view: newCountdownView(d.State(), 3)})
	require.Equal(t, ViewCountdown, d.ActiveViewID(), "the countdown waits for Enter")
	assert.Contains(t, d.PlainView(), "Press Enter to start the 0:03 countdown.")

	d.PressEnter()

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "TIME'S UP!")
	assert.Contains(t, d.LastOutput(), "Timed Workout (1 min)")
	require.NotNil(t, d.State().Stats)
	assert.Equal(t, 1, d.State().Stats.TotalSessions)
	assert.Equal(t, 1, d.State().Stats.StreakDays)
}

func TestTUI_CountdownManualTicks(t *testing.T) {
	app := testApp(t)
	app.Config.TickInterval = time.Hour
	d := NewTestDriver(t, app)

	d.Send(pushViewMsg{view: newCountdownView(d.State(), 2)})
	cd := d.Countdown()
	require.NotNil(t, cd)
	assert.Contains(t, d.PlainView(), "Time remaining: 2s")

	// Ticks before the start key are ignored.
	d.Send(timer.TickMsg{ID: cd.timer.ID()})
	assert.Contains(t, d.PlainView(), "Time remaining: 2s")

	d.PressEnter()
	assert.NotContains(t, d.PlainView(), "Press Enter")

	d.Send(timer.TickMsg{ID: cd.timer.ID()})
	assert.Contains(t, d.PlainView(), "Time remaining: 1s")

	// A tick for another timer is ignored.
	d.Send(timer.TickMsg{ID: cd.timer.ID() + 1000})
	assert.Contains(t, d.PlainView(), "Time remaining: 1s")

	d.Send(timer.TickMsg{ID: cd.timer.ID()})
	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Equal(t, 1, d.State().Stats.TotalSessions)
}

func TestTUI_CountdownInterrupted(t *testing.T) {
	tests := []struct {
		name         string
		credit       bool
		stop         tea.KeyMsg
		wantSessions int
		wantOutput   string
	}{
		{"esc credits by default", true, tea.KeyMsg{Type: tea.KeyEsc}, 1, "stopped early. Session credited."},
		{"ctrl+c stops countdown only", true, tea.KeyMsg{Type: tea.KeyCtrlC}, 1, "Timed Workout (2 min)"},
		{"no credit when disabled", false, tea.KeyMsg{Type: tea.KeyEsc}, 0, "Nothing recorded."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(t)
			app.Config.TickInterval = time.Hour
			app.Config.CreditCancelled = tc.credit
			d := NewTestDriver(t, app)

			d.Send(pushViewMsg{view: newCountdownView(d.State(), 150)})
			require.Equal(t, ViewCountdown, d.ActiveViewID())
			d.PressEnter()

			d.SendKey(tc.stop)

			assert.False(t, d.IsQuitting())
			assert.Equal(t, ViewMenu, d.ActiveViewID())
			assert.Contains(t, d.LastOutput(), tc.wantOutput)
			history, err := app.Tracker.History(context.Background())
			require.NoError(t, err)
			assert.Len(t, history, tc.wantSessions)
		})
	}
}

func TestTUI_CountdownCancelledBeforeStart(t *testing.T) {
	app := testApp(t)
	app.Config.TickInterval = time.Hour
	d := NewTestDriver(t, app)

	d.Send(pushViewMsg{view: newCountdownView(d.State(), 60)})
	require.Equal(t, ViewCountdown, d.ActiveViewID())

	d.PressEsc()

	assert.Equal(t, ViewMenu, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "Cancelled.")
	history, err := app.Tracker.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history, "an unstarted countdown records nothing, even with crediting on")
}

func TestTUI_BusyMenuIgnoresActions(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.State().Busy = true

	d.Choose(1)
	assert.Equal(t, ViewMenu, d.ActiveViewID())

	d.Choose(6)
	assert.False(t, d.IsQuitting(), "exit waits for the in-flight call")

	d.Send(trackerResultMsg{})
	assert.True(t, d.IsQuitting())
}

func TestTUI_WindowResize(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, d.State().Width)
	assert.Equal(t, 20, d.State().Height)
	assert.Equal(t, 16, d.State().ContentHeight())
}
