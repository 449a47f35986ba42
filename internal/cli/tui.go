package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI runs the full-screen menu and prints the goodbye summary once the
// program has exited.
func runTUI(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newAppModel(ctx, app),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}

	stats, _ := app.Tracker.Stats(ctx)
	fmt.Fprintln(out, formatter.FormatGoodbye(stats))
	return nil
}
