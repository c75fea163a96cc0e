// Package config holds the coverpoint runtime configuration: viper
// loading with file, environment and default layers, plus the static
// cricket reference tables shipped with the binary.
package config

import "errors"

// Config is the top-level configuration struct for coverpoint.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Replay  ReplayConfig  `mapstructure:"replay"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds slog handler settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReplayConfig holds match replay knobs.
type ReplayConfig struct {
	Workers       int `mapstructure:"workers"`
	SummaryWindow int `mapstructure:"summary_window"`
}

// OutputConfig holds report and persistence output settings.
type OutputConfig struct {
	Color bool   `mapstructure:"color"`
	Codec string `mapstructure:"codec"`
	Dir   string `mapstructure:"dir"`
}

// minSummaryWindow is the smallest usable summary window: a title row
// plus at least one performer line per innings block.
const minSummaryWindow = 2

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWorkers indicates the workers value is not positive.
	ErrInvalidWorkers = errors.New("replay.workers must be positive")
	// ErrInvalidSummaryWindow indicates the summary window is too small.
	ErrInvalidSummaryWindow = errors.New("replay.summary_window must be at least 2")
	// ErrInvalidLogLevel indicates an unknown logging level.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates an unknown logging format.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrInvalidCodec indicates an unknown output codec.
	ErrInvalidCodec = errors.New("output.codec must be json or lz4")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Replay.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.Replay.SummaryWindow < minSummaryWindow {
		return ErrInvalidSummaryWindow
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Logging.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrInvalidLogFormat
	}

	switch c.Output.Codec {
	case CodecJSON, CodecLZ4:
	default:
		return ErrInvalidCodec
	}

	return nil
}
