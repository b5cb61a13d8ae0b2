// Package contract has the validated CLI configuration and shared helpers
// for all parts of backpack.
package contract

import (
	"fmt"
	"net/url"
	"time"
)

// Default values for configuration.
const (
	DefaultCapacity   = 10
	MaxCapacity       = 10000
	DefaultIterations = 8
	DefaultPrecision  = 4
	MaxPrecision      = 6
	DefaultWorkDelay  = 25 * time.Millisecond
)

// Config holds the runtime configuration for the CLI.
// This struct is the final, validated form of the raw input.
type Config struct {
	Capacity   int           // Interval history capacity for demo timers
	Iterations int           // Number of demo measurement iterations
	WorkDelay  time.Duration // Simulated work duration per demo iteration
	Precision  int           // Decimal precision for statistic columns
	Width      int           // Terminal width override (0 = auto-detect)
	OutputFile string        // Optional path to write output to
	Endpoint   string        // Fleet-management service endpoint
	Verbose    bool          // Enable debug logging
}

// RawInput holds the unvalidated configuration from all sources (file, env,
// flags). Viper unmarshals into this struct.
type RawInput struct {
	Capacity   int    `mapstructure:"capacity"`
	Iterations int    `mapstructure:"iterations"`
	WorkDelay  string `mapstructure:"work-delay"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	OutputFile string `mapstructure:"output-file"`
	Endpoint   string `mapstructure:"endpoint"`
	Verbose    bool   `mapstructure:"verbose"`
}

// ProcessAndValidate populates cfg from the raw input, applying defaults
// and rejecting invalid values.
func ProcessAndValidate(cfg *Config, input *RawInput) error {
	if input.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", input.Capacity)
	}
	if input.Capacity > MaxCapacity {
		return fmt.Errorf("capacity cannot exceed %d", MaxCapacity)
	}
	cfg.Capacity = input.Capacity

	if input.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", input.Iterations)
	}
	cfg.Iterations = input.Iterations

	cfg.WorkDelay = DefaultWorkDelay
	if input.WorkDelay != "" {
		d, err := time.ParseDuration(input.WorkDelay)
		if err != nil {
			return fmt.Errorf("invalid work delay: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("work delay must be positive, got %s", d)
		}
		cfg.WorkDelay = d
	}

	// Clamp precision into a printable range.
	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %d", input.Width)
	}
	cfg.Width = input.Width
	cfg.OutputFile = input.OutputFile

	if input.Endpoint != "" {
		if _, err := url.ParseRequestURI(input.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", input.Endpoint, err)
		}
	}
	cfg.Endpoint = input.Endpoint
	cfg.Verbose = input.Verbose

	return nil
}
