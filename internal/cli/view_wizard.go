package cli

import (
	"context"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// When the form completes, it sends a wizardCompleteMsg with the
// done callback's result.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, completeWith(outputCmd(formatter.Dim("Cancelled.")))
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateAborted:
		return v, completeWith(outputCmd(formatter.Dim("Cancelled.")))
	case huh.StateCompleted:
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, completeWith(tea.Batch(cmd, doneCmd))
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func newManualSessionView(state *SharedState) *wizardView {
	category := domain.ManualCategories[0]
	var minutes string

	done := func() tea.Cmd {
		return trackerCmd(state, func(ctx context.Context, app *App) (string, error) {
			return execManualSession(ctx, app, category, minutes)
		})
	}
	return newWizardView(state, "Manual Session", manualSessionForm(&category, &minutes), done)
}

func newTimedSessionView(state *SharedState) *wizardView {
	var seconds string

	done := func() tea.Cmd { return startCountdown(state, seconds) }
	return newWizardView(state, "Timed Session", timedSessionForm(&seconds), done)
}

// startCountdown opens the countdown for secondsText, or cancels the session
// when it is out of range.
func startCountdown(state *SharedState, secondsText string) tea.Cmd {
	n := parsePositiveInt(secondsText, 0)
	if domain.ValidateTimedSeconds(n) != nil {
		return outputCmd(formatter.Warn(msgInvalidDuration))
	}
	return pushView(newCountdownView(state, n))
}

func newResetView(state *SharedState) *wizardView {
	var confirm bool

	done := func() tea.Cmd {
		if !confirm {
			return outputCmd(formatter.Dim(msgResetCancelled))
		}
		return trackerCmd(state, execReset)
	}
	return newWizardView(state, "Reset", resetConfirmForm(&confirm), done)
}
