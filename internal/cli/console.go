package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/alexanderramin/repstreak/internal/countdown"
	"github.com/alexanderramin/repstreak/internal/domain"
)

const (
	msgInvalidOption   = "Invalid option. Please select 1-6."
	msgInvalidDuration = "Invalid duration. Session cancelled."
	msgNotANumber      = "Please enter a whole number."
	msgResetDone       = "All data has been reset."
	msgResetCancelled  = "Reset cancelled."
	msgNothingRecorded = "Countdown stopped early. Nothing recorded."
)

// console is the line-oriented menu loop used when stdin is not a terminal
// or --plain is set.
type console struct {
	app *App
	in  *bufio.Reader
	out io.Writer

	// interruptContext scopes one countdown; cancelling it stops the countdown.
	interruptContext func(ctx context.Context) (context.Context, context.CancelFunc)
}

func newConsole(app *App, in io.Reader, out io.Writer) *console {
	return &console{
		app: app,
		in:  bufio.NewReader(in),
		out: out,
		interruptContext: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt)
		},
	}
}

func runConsole(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	return newConsole(app, in, out).run(ctx)
}

// run shows the menu until Exit is chosen or input ends.
func (c *console) run(ctx context.Context) error {
	c.println(formatter.FormatWelcome())

	for {
		stats, err := c.app.Tracker.Stats(ctx)
		if err != nil {
			c.println(formatter.Error(err))
		}
		c.println("")
		c.print(formatter.FormatMenu(stats))

		line, err := c.prompt("Select an option (1-6): ")
		if err != nil {
			return c.finish(ctx, err)
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil || choice < 1 || choice > len(formatter.MenuItems) {
			c.println(formatter.StyleRed.Render(msgInvalidOption))
			continue
		}
		if choice == formatter.MenuExit {
			return c.finish(ctx, nil)
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.finish(ctx, err)
		}
	}
}

func (c *console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case formatter.MenuStartSession:
		return c.manualSession(ctx)
	case formatter.MenuViewStats:
		return c.showStats(ctx)
	case formatter.MenuViewHistory:
		return c.showHistory(ctx)
	case formatter.MenuTimedSession:
		return c.timedSession(ctx)
	case formatter.MenuReset:
		return c.reset(ctx)
	}
	return nil
}

// finish prints the goodbye summary. A closed input stream is a normal exit.
func (c *console) finish(ctx context.Context, err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	stats, _ := c.app.Tracker.Stats(ctx)
	c.println("")
	c.println(formatter.FormatGoodbye(stats))
	return nil
}

func (c *console) manualSession(ctx context.Context) error {
	c.print(formatter.FormatCategoryMenu())
	choice, err := c.promptInt("Select type (1-4): ")
	if err != nil {
		return err
	}
	category := domain.CategoryForChoice(choice)

	minutes, err := c.promptInt("Duration (minutes): ")
	if err != nil {
		return err
	}
	if domain.ValidateMinutes(minutes) != nil {
		c.println(formatter.Warn(msgInvalidDuration))
		return nil
	}

	rec, err := c.app.Tracker.RecordSession(ctx, minutes, category, c.app.today())
	if err != nil {
		c.println(formatter.Error(err))
		return nil
	}
	c.println(formatter.FormatRecorded(rec))
	return nil
}

func (c *console) timedSession(ctx context.Context) error {
	seconds, err := c.promptInt("Enter duration in seconds: ")
	if err != nil {
		return err
	}
	if domain.ValidateTimedSeconds(seconds) != nil {
		c.println(formatter.Warn(msgInvalidDuration))
		return nil
	}

	if _, err := c.prompt(fmt.Sprintf("Press Enter to start the %s countdown (Ctrl+C stops it)...", formatter.FormatSeconds(seconds))); err != nil {
		return err
	}

	runCtx, stop := c.interruptContext(ctx)
	completed, _ := countdown.Run(runCtx, seconds, c.app.Config.TickInterval, func(remaining int) {
		fmt.Fprintf(c.out, "\r%s ", formatter.FormatCountdownTick(remaining))
	})
	stop()
	c.println("")

	if err := ctx.Err(); err != nil {
		return err
	}
	if !completed && !c.app.Config.CreditCancelled {
		c.println(formatter.Warn(msgNothingRecorded))
		return nil
	}

	rec, err := c.app.Tracker.RecordTimedSession(ctx, seconds, c.app.today())
	if err != nil {
		c.println(formatter.Error(err))
		return nil
	}
	c.println(formatter.FormatTimedRecorded(rec, !completed))
	return nil
}

func (c *console) showStats(ctx context.Context) error {
	stats, err := c.app.Tracker.Stats(ctx)
	if err != nil {
		c.println(formatter.Error(err))
		return nil
	}
	c.print(formatter.FormatStats(stats))
	return nil
}

func (c *console) showHistory(ctx context.Context) error {
	history, err := c.app.Tracker.History(ctx)
	if err != nil {
		c.println(formatter.Error(err))
		return nil
	}
	c.print(formatter.FormatHistory(history))
	return nil
}

func (c *console) reset(ctx context.Context) error {
	if !promptYesNoIO(c.in, c.out, "Are you sure you want to reset all data? (yes/no): ") {
		c.println(formatter.Dim(msgResetCancelled))
		return nil
	}
	if err := c.app.Tracker.Reset(ctx); err != nil {
		c.println(formatter.Error(err))
		return nil
	}
	c.println(formatter.Success(msgResetDone))
	return nil
}

// prompt writes message and returns the trimmed reply.
func (c *console) prompt(message string) (string, error) {
	fmt.Fprint(c.out, message)
	line, err := readPromptLine(c.in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until the reply parses as an integer.
func (c *console) promptInt(message string) (int, error) {
	for {
		line, err := c.prompt(message)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println(formatter.StyleRed.Render(msgNotANumber))
	}
}

func (c *console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *console) println(s string) {
	fmt.Fprintln(c.out, s)
}
