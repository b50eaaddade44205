package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Parameter ranges, in milliseconds where applicable.
const (
	MaxArrivalMs       = 10000
	MaxBreakMs         = 100
	MaxClosingWindowMs = 10000
)

// ArgCount is the number of positional arguments the simulator takes.
const ArgCount = 5

// Params holds the five simulation parameters. They are validated up front
// and immutable once the simulation starts.
type Params struct {
	Workers       int
	Clients       int
	MaxArrival    time.Duration
	MaxBreak      time.Duration
	ClosingWindow time.Duration
}

// ParseArgs builds Params from the five positional arguments:
// workers, clients, max arrival delay (ms), max break duration (ms) and
// closing-window bound (ms).
func ParseArgs(args []string) (Params, error) {
	if len(args) != ArgCount {
		return Params{}, fmt.Errorf("expected %d arguments, got %d", ArgCount, len(args))
	}
	values := make([]int, ArgCount)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Params{}, fmt.Errorf("argument %d: %q is not an integer", i+1, arg)
		}
		values[i] = n
	}
	p := Params{
		Workers:       values[0],
		Clients:       values[1],
		MaxArrival:    time.Duration(values[2]) * time.Millisecond,
		MaxBreak:      time.Duration(values[3]) * time.Millisecond,
		ClosingWindow: time.Duration(values[4]) * time.Millisecond,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks every parameter against its allowed range.
func (p Params) Validate() error {
	switch {
	case p.Workers <= 0:
		return fmt.Errorf("worker count must be positive, got %d", p.Workers)
	case p.Clients <= 0:
		return fmt.Errorf("client count must be positive, got %d", p.Clients)
	case p.MaxArrival < 0 || p.MaxArrival > MaxArrivalMs*time.Millisecond:
		return fmt.Errorf("max arrival delay must be in 0..%d ms, got %v", MaxArrivalMs, p.MaxArrival)
	case p.MaxBreak < 0 || p.MaxBreak > MaxBreakMs*time.Millisecond:
		return fmt.Errorf("max break duration must be in 0..%d ms, got %v", MaxBreakMs, p.MaxBreak)
	case p.ClosingWindow < 0 || p.ClosingWindow > MaxClosingWindowMs*time.Millisecond:
		return fmt.Errorf("closing window must be in 0..%d ms, got %v", MaxClosingWindowMs, p.ClosingWindow)
	}
	return nil
}

// Settings holds ambient configuration loaded from environment variables.
// Simulation parameters never come from the environment; only the
// diagnostic and output plumbing does.
type Settings struct {
	Log    LogSettings
	Output OutputSettings
}

// LogSettings holds diagnostic logger configuration.
type LogSettings struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputSettings holds event log output configuration.
type OutputSettings struct {
	Path string `envconfig:"OFFICE_LOG" default:"postoffice.out"`
}

// LoadSettings loads ambient settings from environment variables.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}

// LoadSettingsOrDefault loads ambient settings or falls back to defaults.
func LoadSettingsOrDefault() *Settings {
	s, err := LoadSettings()
	if err != nil {
		return DefaultSettings()
	}
	return s
}

// DefaultSettings returns the built-in ambient settings.
func DefaultSettings() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:       "info",
			Development: false,
		},
		Output: OutputSettings{
			Path: "postoffice.out",
		},
	}
}
