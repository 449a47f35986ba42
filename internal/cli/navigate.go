package cli

import (
	"github.com/alexanderramin/repstreak/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// cmdOutputMsg carries text to display transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a form or countdown finishes or is
// cancelled. The appModel pops the view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// trackerResultMsg carries the outcome of a tracker call together with a
// fresh stats snapshot for the header.
type trackerResultMsg struct {
	output string
	stats  *contract.StatsResponse
}

type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(output string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: output} }
}

// completeWith pops the current view and then runs next.
func completeWith(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}
