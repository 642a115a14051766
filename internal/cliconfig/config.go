package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tiff2pdf"
)

// Config holds CLI configuration for tiff2pdf.
type Config struct {
	Dir        string
	Out        string
	Workers    int
	FailFast   bool
	DryRun     bool
	StagingDir string
	MaxFrames  int

	Watch  bool
	Settle time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Out:       tiff2pdf.DefaultOutputSubfolder,
		Workers:   1,
		MaxFrames: tiff2pdf.DefaultMaxFrames,
		Settle:    2 * time.Second,
		LogLevel:  "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: dir is required", tiff2pdf.ErrInvalidConfig)
	}
	if c.Out == "" {
		return fmt.Errorf("%w: out must not be empty", tiff2pdf.ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", tiff2pdf.ErrInvalidConfig)
	}
	if c.MaxFrames <= 0 {
		return fmt.Errorf("%w: max-frames must be positive", tiff2pdf.ErrInvalidConfig)
	}
	if c.Watch && c.Settle <= 0 {
		return fmt.Errorf("%w: settle must be positive in watch mode", tiff2pdf.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log-level: %v", tiff2pdf.ErrInvalidConfig, err)
	}
	return nil
}

// Library converts the CLI configuration into the library configuration.
func (c *Config) Library() tiff2pdf.Config {
	return tiff2pdf.Config{
		Directory:       c.Dir,
		OutputSubfolder: c.Out,
		Workers:         c.Workers,
		FailFast:        c.FailFast,
		DryRun:          c.DryRun,
		StagingDir:      c.StagingDir,
		MaxFrames:       c.MaxFrames,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
