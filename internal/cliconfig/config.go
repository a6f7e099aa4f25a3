// Package cliconfig layers hrvfeat configuration from defaults, a TOML
// file, HRVFEAT_* environment variables, and command-line flags, in
// ascending precedence.
package cliconfig

import (
	"fmt"
	"strconv"
)

// Labelling protocol names accepted on the command line.
const (
	LabelMedian = "median"
	LabelFixed  = "fixed"
)

// Config holds CLI configuration for hrvfeat.
type Config struct {
	Output string // one-shot output file
	OutDir string // watch-mode output directory

	Window     int
	Step       int
	FsInterp   float64
	MinSamples int

	ArtifactLow  float64
	ArtifactHigh float64

	Labelling string
	Threshold float64

	Age    int
	Gender string

	Workers int
	Watch   string // directory to watch; empty selects one-shot mode
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Output:       "features.csv",
		OutDir:       ".",
		Window:       60,
		Step:         20,
		FsInterp:     4.0,
		MinSamples:   20,
		ArtifactLow:  300,
		ArtifactHigh: 2000,
		Labelling:    LabelMedian,
		Threshold:    20,
	}
}

// Validate checks the configuration for errors and sets derived
// defaults.
func (c *Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %d", c.Window)
	}

	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %d", c.Step)
	}

	if c.FsInterp <= 0 {
		return fmt.Errorf("fs-interp must be positive, got %v", c.FsInterp)
	}

	if c.MinSamples <= 0 {
		return fmt.Errorf("min-samples must be positive, got %d", c.MinSamples)
	}

	if c.ArtifactLow >= c.ArtifactHigh {
		return fmt.Errorf("artifact bounds inverted: [%v, %v]", c.ArtifactLow, c.ArtifactHigh)
	}

	switch c.Labelling {
	case LabelMedian, LabelFixed:
	default:
		return fmt.Errorf("unknown labelling %q (want %q or %q)", c.Labelling, LabelMedian, LabelFixed)
	}

	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}

	if c.OutDir == "" {
		c.OutDir = "."
	}

	return nil
}

// configSetter applies configuration values while respecting flag
// precedence: a value is only taken when the corresponding flag was
// not explicitly set.
type configSetter struct {
	changed map[string]bool
}

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

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}

	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not
// changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}

	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables.
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

// setFloatFromString parses a string to float64 and sets the
// destination if valid. Used for environment variables.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}

	if f <= 0 {
		return nil
	}

	*dst = f

	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true" and "1" as true, anything else as false. Used for
// environment variables.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}

	*dst = value == "true" || value == "1"
}
