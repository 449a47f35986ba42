package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/repstreak/internal/config"
	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/alexanderramin/repstreak/internal/service"
	"github.com/spf13/cobra"
)

// App holds the tracker and the settings shared by the plain console and
// the terminal UI.
type App struct {
	Tracker service.TrackerService
	Config  config.Config

	// OpenTracker builds Tracker once the configuration is final. It is only
	// called when Tracker is nil.
	OpenTracker func(cfg config.Config) (service.TrackerService, error)

	// Clock reports the current time; its calendar date is the session date.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) today() domain.Date {
	if a.Clock == nil {
		return domain.DateOf(time.Now())
	}
	return domain.DateOf(a.Clock())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the "repstreak" command. Configuration is resolved when
// the command runs so --config can name the file to load.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "repstreak",
		Short: "Log workout sessions and keep a daily streak",
		Long: `Log workout sessions from a numbered menu, review totals and history,
and keep a consecutive-day streak going. Nothing is written to disk; every run
starts from an empty tracker.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			app.Config = cfg

			if app.Tracker == nil {
				if app.OpenTracker == nil {
					return fmt.Errorf("no tracker configured")
				}
				tracker, err := app.OpenTracker(cfg)
				if err != nil {
					return fmt.Errorf("opening tracker: %w", err)
				}
				app.Tracker = tracker
			}

			if cfg.Plain || !app.interactive() {
				return runConsole(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runTUI(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	bindFlags(root.Flags())
	return root
}
