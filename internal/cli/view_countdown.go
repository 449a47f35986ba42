package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// countdownView runs a timed session once Enter is pressed. The recorded
// duration always comes from the requested seconds, never from how many
// ticks were displayed.
type countdownView struct {
	state    *SharedState
	seconds  int
	interval time.Duration
	timer    timer.Model
	start    key.Binding
	stop     key.Binding
	started  bool
	finished bool
}

func newCountdownView(state *SharedState, seconds int) *countdownView {
	interval := state.App.Config.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &countdownView{
		state:    state,
		seconds:  seconds,
		interval: interval,
		timer:    timer.NewWithInterval(time.Duration(seconds)*interval, interval),
		start:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		stop:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "stop early")),
	}
}

func (v *countdownView) ID() ViewID    { return ViewCountdown }
func (v *countdownView) Title() string { return "Countdown" }

func (v *countdownView) ShortHelp() []key.Binding {
	if !v.started {
		cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
		return []key.Binding{v.start, cancel}
	}
	return []key.Binding{v.stop}
}

func (v *countdownView) Init() tea.Cmd { return nil }

func (v *countdownView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		if msg.ID != v.timer.ID() || !v.started || v.finished {
			return v, nil
		}
		var cmd tea.Cmd
		v.timer, cmd = v.timer.Update(msg)
		return v, cmd

	case timer.TimeoutMsg:
		if msg.ID != v.timer.ID() {
			return v, nil
		}
		return v, v.finish(true)

	case tea.KeyMsg:
		if !v.started {
			switch {
			case key.Matches(msg, v.start):
				v.started = true
				return v, v.timer.Init()
			case key.Matches(msg, v.stop):
				v.finished = true
				return v, completeWith(outputCmd(formatter.Dim("Cancelled.")))
			}
			return v, nil
		}
		if key.Matches(msg, v.stop) {
			return v, v.finish(false)
		}
	}
	return v, nil
}

// finish pops the countdown and records the session unless it was stopped
// early with crediting disabled.
func (v *countdownView) finish(completed bool) tea.Cmd {
	if v.finished {
		return nil
	}
	v.finished = true

	if !completed && !v.state.App.Config.CreditCancelled {
		return completeWith(outputCmd(formatter.Warn(msgNothingRecorded)))
	}

	seconds := v.seconds
	return completeWith(trackerCmd(v.state, func(ctx context.Context, app *App) (string, error) {
		return execTimedSession(ctx, app, seconds, !completed)
	}))
}

// remaining rounds up so the last partial tick still reads 1s.
func (v *countdownView) remaining() int {
	if v.timer.Timeout <= 0 {
		return 0
	}
	return int((v.timer.Timeout + v.interval - 1) / v.interval)
}

func (v *countdownView) View() string {
	body := formatter.FormatCountdown(v.remaining(), v.seconds)
	if !v.started {
		body += "\n\n" + formatter.Dim(fmt.Sprintf("Press Enter to start the %s countdown.", formatter.FormatSeconds(v.seconds)))
	}
	return "\n" + formatter.RenderBox("Timed Session", body) + "\n"
}
