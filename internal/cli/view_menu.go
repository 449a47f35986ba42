package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Choose: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-6", "choose"),
		),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// menuView is the home view: the numbered main menu.
type menuView struct {
	state  *SharedState
	keys   menuKeyMap
	cursor int
}

func newMenuView(state *SharedState) *menuView {
	return &menuView{state: state, keys: newMenuKeyMap()}
}

func (v *menuView) ID() ViewID    { return ViewMenu }
func (v *menuView) Title() string { return "" }

func (v *menuView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Choose, v.keys.Up, v.keys.Down, v.keys.Select, v.keys.Quit}
}

func (v *menuView) Init() tea.Cmd { return nil }

func (v *menuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, v.keys.Down):
		if v.cursor < len(formatter.MenuItems)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, v.keys.Select):
		return v, v.choose(v.cursor + 1)
	case key.Matches(keyMsg, v.keys.Choose):
		choice := int(keyMsg.Runes[0] - '0')
		if choice < 1 || choice > len(formatter.MenuItems) {
			return v, outputCmd(formatter.StyleRed.Render(msgInvalidOption))
		}
		v.cursor = choice - 1
		return v, v.choose(choice)
	case key.Matches(keyMsg, v.keys.Quit):
		return v, func() tea.Msg { return quitMsg{} }
	}
	return v, nil
}

// choose runs a menu entry. While a tracker call is in flight only Exit is
// accepted, and the root model holds it until the call finishes.
func (v *menuView) choose(choice int) tea.Cmd {
	if choice == formatter.MenuExit {
		return func() tea.Msg { return quitMsg{} }
	}
	if v.state.Busy {
		return nil
	}

	switch choice {
	case formatter.MenuStartSession:
		return pushView(newManualSessionView(v.state))
	case formatter.MenuViewStats:
		return trackerCmd(v.state, execShowStats)
	case formatter.MenuViewHistory:
		return trackerCmd(v.state, execShowHistory)
	case formatter.MenuTimedSession:
		return pushView(newTimedSessionView(v.state))
	case formatter.MenuReset:
		return pushView(newResetView(v.state))
	}
	return nil
}

func (v *menuView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.CurrentStatsLine(v.state.Stats) + "\n\n")

	for i, item := range formatter.MenuItems {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		num := formatter.StyleBlue.Render(fmt.Sprintf("%d.", i+1))
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, num, style.Render(item)))
	}

	if v.state.Busy {
		b.WriteString("\n  " + formatter.Dim("Working...") + "\n")
	}
	return b.String()
}
