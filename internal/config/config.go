package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tracker's runtime preferences. None of it is state: the
// tracker itself always starts empty.
type Config struct {
	// TickInterval is the delay between countdown updates.
	TickInterval time.Duration
	// CreditCancelled records a timed session even when its countdown is
	// interrupted.
	CreditCancelled bool
	// LogEvents writes one structured log line per tracker use case to stderr.
	LogEvents bool
	// Plain forces the line-oriented console even on a terminal.
	Plain bool
}

// fileConfig mirrors the YAML file; nil fields keep the current value.
type fileConfig struct {
	TickMs          *int  `yaml:"tick_ms"`
	CreditCancelled *bool `yaml:"credit_cancelled"`
	LogEvents       *bool `yaml:"log_events"`
	Plain           *bool `yaml:"plain"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval:    time.Second,
		CreditCancelled: true,
		LogEvents:       false,
		Plain:           false,
	}
}

// Load starts from Default, applies the YAML file at path (skipped when path
// is empty), then REPSTREAK_* environment overrides:
//
//	REPSTREAK_TICK_MS, REPSTREAK_CREDIT_CANCELLED,
//	REPSTREAK_LOG_EVENTS, REPSTREAK_PLAIN
//
// Unparseable environment values are ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
		if err := fc.applyTo(&cfg); err != nil {
			return Config{}, fmt.Errorf("config validation: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// PathFromEnv returns the config file named by REPSTREAK_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv("REPSTREAK_CONFIG")
}

func (fc fileConfig) applyTo(cfg *Config) error {
	if fc.TickMs != nil {
		if *fc.TickMs <= 0 {
			return fmt.Errorf("tick_ms must be positive, got %d", *fc.TickMs)
		}
		cfg.TickInterval = time.Duration(*fc.TickMs) * time.Millisecond
	}
	if fc.CreditCancelled != nil {
		cfg.CreditCancelled = *fc.CreditCancelled
	}
	if fc.LogEvents != nil {
		cfg.LogEvents = *fc.LogEvents
	}
	if fc.Plain != nil {
		cfg.Plain = *fc.Plain
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REPSTREAK_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TickInterval = time.Duration(n) * time.Millisecond
		}
	}
	applyBoolEnv(&cfg.CreditCancelled, "REPSTREAK_CREDIT_CANCELLED")
	applyBoolEnv(&cfg.LogEvents, "REPSTREAK_LOG_EVENTS")
	applyBoolEnv(&cfg.Plain, "REPSTREAK_PLAIN")
}

func applyBoolEnv(dst *bool, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
