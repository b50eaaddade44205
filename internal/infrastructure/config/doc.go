// Package config provides configuration for the post office simulator.
//
// Simulation parameters (Params) come from five positional CLI arguments or
// a YAML scenario file and are validated before any shared resource is
// created. Ambient settings (Settings) come from environment variables with
// sensible defaults.
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV: diagnostic logger level and encoding
//   - OFFICE_LOG: event log path (truncated at start of every run)
package config
