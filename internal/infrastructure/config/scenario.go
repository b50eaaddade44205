package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// scenario mirrors Params in the YAML scenario file format.
type scenario struct {
	Workers         int `yaml:"workers"`
	Clients         int `yaml:"clients"`
	MaxArrivalMs    int `yaml:"max_arrival_ms"`
	MaxBreakMs      int `yaml:"max_break_ms"`
	ClosingWindowMs int `yaml:"closing_window_ms"`
}

// LoadScenario reads Params from a YAML scenario file. The same validation
// applies as for positional arguments.
func LoadScenario(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Params{}, fmt.Errorf("parse scenario: %w", err)
	}
	p := Params{
		Workers:       sc.Workers,
		Clients:       sc.Clients,
		MaxArrival:    time.Duration(sc.MaxArrivalMs) * time.Millisecond,
		MaxBreak:      time.Duration(sc.MaxBreakMs) * time.Millisecond,
		ClosingWindow: time.Duration(sc.ClosingWindowMs) * time.Millisecond,
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return p, nil
}
