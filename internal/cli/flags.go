package cli

import (
	"fmt"

	"github.com/alexanderramin/repstreak/internal/config"
	"github.com/spf13/pflag"
)

const (
	flagConfig          = "config"
	flagPlain           = "plain"
	flagTick            = "tick"
	flagCreditCancelled = "credit-cancelled"
	flagLogEvents       = "log-events"
)

func bindFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.String(flagConfig, "", "path to a YAML config file (default $REPSTREAK_CONFIG)")
	fs.Bool(flagPlain, def.Plain, "use the line-oriented console even on a terminal")
	fs.Duration(flagTick, def.TickInterval, "countdown tick interval")
	fs.Bool(flagCreditCancelled, def.CreditCancelled, "record a timed session when its countdown is interrupted")
	fs.Bool(flagLogEvents, def.LogEvents, "log each tracker operation to stderr")
}

// resolveConfig loads defaults, the config file and the environment, then
// applies only the flags the user actually set.
func resolveConfig(fs *pflag.FlagSet) (config.Config, error) {
	path, err := fs.GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		path = config.PathFromEnv()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := applyFlagOverrides(fs, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func applyFlagOverrides(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed(flagTick) {
		tick, err := fs.GetDuration(flagTick)
		if err != nil {
			return err
		}
		if tick <= 0 {
			return fmt.Errorf("--%s must be positive, got %s", flagTick, tick)
		}
		cfg.TickInterval = tick
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{flagPlain, &cfg.Plain},
		{flagCreditCancelled, &cfg.CreditCancelled},
		{flagLogEvents, &cfg.LogEvents},
	}
	for _, b := range bools {
		if !fs.Changed(b.name) {
			continue
		}
		v, err := fs.GetBool(b.name)
		if err != nil {
			return err
		}
		*b.dst = v
	}
	return nil
}
