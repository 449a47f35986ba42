package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the main menu at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool

	// quitPending defers an exit requested while a tracker call is in flight
	// until its result arrives.
	quitPending bool

	// Transient output from the last action, displayed in the content area.
	lastOutput string

	// Scrollable viewport for output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	state := &SharedState{App: app, Ctx: ctx}

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:     state,
		viewStack: []View{newMenuView(state)},
		help:      help.New(),
		outputVP:  vp,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) popView() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{trackerCmd(m.state, execLoadStats)}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}

	case pushViewMsg:
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		m.popView()
		m.clearOutput()
		return m, msg.nextCmd

	case cmdOutputMsg:
		m.showOutput(msg.output)
		return m, nil

	case trackerResultMsg:
		m.state.Busy = false
		if msg.stats != nil {
			m.state.Stats = msg.stats
		}
		if m.quitPending {
			return m.quit()
		}
		if msg.output != "" {
			m.showOutput(msg.output)
		}
		return m, nil

	case quitMsg:
		return m.quit()
	}

	// Forward everything else (timer ticks, form internals) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.activeView()

	// Views with their own input get every key, including Ctrl+C, which
	// stops a countdown rather than the whole program.
	if viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// When output is displayed, scroll keys move the viewport; any other
	// key dismisses it and falls through.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// quit exits now, or once the in-flight tracker call reports back so the
// goodbye summary never reads state that is still being written.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.state.Busy {
		m.quitPending = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.lastOutput != "" {
		if m.outputActive && m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("repstreak")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	title += "  " + formatter.Dim("[") + formatter.CurrentStatsLine(m.state.Stats) + formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints string
	if m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height && m.state.Height > 0 {
		hints = scrollIndicator(m.outputVP) + "  " + m.help.ShortHelpView(outputHelpBindings())
	} else if m.outputActive {
		hints = m.help.ShortHelpView([]key.Binding{dismissBinding()})
	} else if v := m.activeView(); v != nil {
		hints = m.help.ShortHelpView(v.ShortHelp())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + hints
}

func (m *appModel) showOutput(output string) {
	m.lastOutput = output
	m.outputActive = true
	m.outputVP.SetContent(output)
	m.outputVP.Width = m.state.Width
	m.outputVP.Height = m.state.ContentHeight()
	m.outputVP.GotoTop()
}

// clearOutput dismisses the transient output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow/page keys scroll; letter and digit keys stay free so they can
// dismiss the output and reach the menu.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func outputHelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓ pgup/pgdn", "scroll")),
		dismissBinding(),
	}
}

func dismissBinding() key.Binding {
	return key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss"))
}

// isOutputScrollKey returns true if the key should scroll the output viewport
// rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

// viewCapturesInput reports whether the view handles every key itself,
// bypassing the global bindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewForm, ViewCountdown:
		return true
	}
	return false
}
