// Package teatest drives a bubbletea model from tests without a tea.Program.
//
// Every message goes straight to Update and the returned command is run on
// the spot, so a test observes the model only after all follow-up messages
// have been applied. A command still pending after the driver's timeout
// (cursor blinks, hour-long timer ticks) is dropped; tests feed those
// messages by hand when they need them.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained commands one Send may follow.
const MaxDrainDepth = 100

// DefaultCmdTimeout fits a tracker call against the in-memory journal but
// not a cursor blink (~530ms).
const DefaultCmdTimeout = 50 * time.Millisecond

// Driver owns the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records a tea.QuitMsg, which a real program would swallow.
	Quitting bool

	cmdTimeout time.Duration
}

// Option adjusts a Driver before the first message.
type Option func(*Driver)

// New wraps model. Init is not run until DrainInit.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg up front.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout sets how long one command may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.cmdTimeout = timeout
	}
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.follow(d.Model.Init(), 0)
}

// Send applies msg and every message its commands produce. Nothing is
// delivered once the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.apply(msg, 0)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.press(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.press(tea.KeyEsc)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.press(tea.KeyCtrlC)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.press(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.press(tea.KeyDown)
}

// Choose presses the digit for menu entry n.
func (d *Driver) Choose(n int) {
	d.T.Helper()
	d.PressKey(rune('0' + n%10))
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

// apply hands msg to Update and follows the resulting command.
func (d *Driver) apply(msg tea.Msg, depth int) {
	d.T.Helper()
	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.follow(next, depth+1)
}

// follow runs cmd and routes its message. Batches fan out depth first, in
// order.
func (d *Driver) follow(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped following commands at depth %d", depth)
		return
	}

	msg, ok := runWithTimeout(cmd, d.cmdTimeout)
	if !ok || msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.follow(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		d.apply(msg, depth)
	}
}

// runWithTimeout reports ok=false when cmd is still running after timeout.
// The goroutine is left to finish on its own.
func runWithTimeout(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor, which
// would otherwise reschedule themselves forever.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
