package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	p, err := ParseArgs([]string{"2", "5", "100", "50", "200"})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Workers)
	assert.Equal(t, 5, p.Clients)
	assert.Equal(t, 100*time.Millisecond, p.MaxArrival)
	assert.Equal(t, 50*time.Millisecond, p.MaxBreak)
	assert.Equal(t, 200*time.Millisecond, p.ClosingWindow)
}

func TestParseArgsZeroDelays(t *testing.T) {
	p, err := ParseArgs([]string{"2", "5", "0", "0", "0"})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), p.MaxArrival)
	assert.Equal(t, time.Duration(0), p.ClosingWindow)
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"too few", []string{"2", "5", "0", "0"}},
		{"too many", []string{"2", "5", "0", "0", "0", "0"}},
		{"not a number", []string{"2", "five", "0", "0", "0"}},
		{"trailing garbage", []string{"2", "5x", "0", "0", "0"}},
		{"zero workers", []string{"0", "5", "0", "0", "0"}},
		{"negative clients", []string{"2", "-1", "0", "0", "0"}},
		{"arrival too large", []string{"2", "5", "10001", "0", "0"}},
		{"break too large", []string{"2", "5", "0", "101", "0"}},
		{"window too large", []string{"2", "5", "0", "0", "10001"}},
		{"negative delay", []string{"2", "5", "-10", "0", "0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := "workers: 3\nclients: 8\nmax_arrival_ms: 20\nmax_break_ms: 10\nclosing_window_ms: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Workers)
	assert.Equal(t, 8, p.Clients)
	assert.Equal(t, 20*time.Millisecond, p.MaxArrival)
	assert.Equal(t, 10*time.Millisecond, p.MaxBreak)
	assert.Equal(t, 40*time.Millisecond, p.ClosingWindow)
}

func TestLoadScenarioRejectsInvalidParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := "workers: 0\nclients: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "info", s.Log.Level)
	assert.False(t, s.Log.Development)
	assert.Equal(t, "postoffice.out", s.Output.Path)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("OFFICE_LOG", "/tmp/office.out")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Log.Level)
	assert.True(t, s.Log.Development)
	assert.Equal(t, "/tmp/office.out", s.Output.Path)
}
