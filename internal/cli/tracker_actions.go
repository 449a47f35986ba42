package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/alexanderramin/repstreak/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// trackerCmd runs fn against the tracker and reports its output with a
// fresh stats snapshot. It must be built from Update: it marks the state
// busy until the trackerResultMsg arrives.
func trackerCmd(state *SharedState, fn func(ctx context.Context, app *App) (string, error)) tea.Cmd {
	state.Busy = true
	app, ctx := state.App, state.Ctx
	return func() tea.Msg {
		var res trackerResultMsg
		out, err := fn(ctx, app)
		if err != nil {
			res.output = formatter.Error(err)
		} else {
			res.output = out
		}
		if stats, err := app.Tracker.Stats(ctx); err == nil {
			res.stats = stats
		}
		return res
	}
}

func execLoadStats(ctx context.Context, app *App) (string, error) {
	return "", nil
}

func execShowStats(ctx context.Context, app *App) (string, error) {
	stats, err := app.Tracker.Stats(ctx)
	if err != nil {
		return "", err
	}
	return formatter.FormatStats(stats), nil
}

func execShowHistory(ctx context.Context, app *App) (string, error) {
	history, err := app.Tracker.History(ctx)
	if err != nil {
		return "", err
	}
	return formatter.FormatHistory(history), nil
}

// execManualSession records a session from form input. Out-of-range
// durations cancel the session without touching the tracker.
func execManualSession(ctx context.Context, app *App, category domain.Category, minutesText string) (string, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil || domain.ValidateMinutes(minutes) != nil {
		return formatter.Warn(msgInvalidDuration), nil
	}
	rec, err := app.Tracker.RecordSession(ctx, minutes, category, app.today())
	if err != nil {
		return "", err
	}
	return formatter.FormatRecorded(rec), nil
}

func execTimedSession(ctx context.Context, app *App, seconds int, interrupted bool) (string, error) {
	rec, err := app.Tracker.RecordTimedSession(ctx, seconds, app.today())
	if err != nil {
		return "", err
	}
	return formatter.FormatTimedRecorded(rec, interrupted), nil
}

func execReset(ctx context.Context, app *App) (string, error) {
	if err := app.Tracker.Reset(ctx); err != nil {
		return "", err
	}
	return formatter.Success(msgResetDone), nil
}
