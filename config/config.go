// Package config defines the App's immutable Config value and its
// validating constructor.
package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	defaultFPSCap              = 60
	defaultMaxDrawlistBytes    = 1024 * 1024
	defaultMaxFramesInFlight   = 1
	defaultMaxEvents           = 4096
	defaultMaxPasteBytes       = 256 * 1024
	defaultMaxUserPayloadBytes = 256 * 1024
	maxEventBytesCeiling       = 4 * 1024 * 1024
)

// Config is immutable once constructed; every field is a value type,
// so New stores nothing mutable and the returned pointer can be shared
// freely.
type Config struct {
	FPSCap              int
	MaxDrawlistBytes    int
	MaxFramesInFlight   int
	MaxEventBytes       int
	MaxEvents           int
	MaxPasteBytes       int
	MaxUserPayloadBytes int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithFPSCap overrides the default 60 fps cap. Valid range 1..=1000.
func WithFPSCap(n int) Option { return func(c *Config) { c.FPSCap = n } }

// WithMaxDrawlistBytes sets the drawlist builder's capacity.
func WithMaxDrawlistBytes(n int) Option { return func(c *Config) { c.MaxDrawlistBytes = n } }

// WithMaxFramesInFlight overrides the default of 1.
func WithMaxFramesInFlight(n int) Option { return func(c *Config) { c.MaxFramesInFlight = n } }

// WithMaxEventBytes bounds a single inbound batch's byte length, 1..=4MiB.
func WithMaxEventBytes(n int) Option { return func(c *Config) { c.MaxEventBytes = n } }

// WithMaxEvents overrides the default of 4096 events per batch.
func WithMaxEvents(n int) Option { return func(c *Config) { c.MaxEvents = n } }

// WithMaxPasteBytes overrides the default of 256 KiB.
func WithMaxPasteBytes(n int) Option { return func(c *Config) { c.MaxPasteBytes = n } }

// WithMaxUserPayloadBytes overrides the default of 256 KiB.
func WithMaxUserPayloadBytes(n int) Option { return func(c *Config) { c.MaxUserPayloadBytes = n } }

// New validates and returns a Config. Every invalid field is reported
// together as a *multierror.Error rather than failing on the first one,
// so construction-time prop errors are never started against.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		FPSCap:              defaultFPSCap,
		MaxDrawlistBytes:    defaultMaxDrawlistBytes,
		MaxFramesInFlight:   defaultMaxFramesInFlight,
		MaxEventBytes:       maxEventBytesCeiling,
		MaxEvents:           defaultMaxEvents,
		MaxPasteBytes:       defaultMaxPasteBytes,
		MaxUserPayloadBytes: defaultMaxUserPayloadBytes,
	}
	for _, opt := range opts {
		opt(c)
	}

	var errs *multierror.Error
	if c.FPSCap < 1 || c.FPSCap > 1000 {
		errs = multierror.Append(errs, fmt.Errorf("fpsCap must be in 1..=1000, got %d", c.FPSCap))
	}
	if c.MaxDrawlistBytes <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxDrawlistBytes must be positive, got %d", c.MaxDrawlistBytes))
	}
	if c.MaxFramesInFlight <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxFramesInFlight must be positive, got %d", c.MaxFramesInFlight))
	}
	if c.MaxEventBytes < 1 || c.MaxEventBytes > maxEventBytesCeiling {
		errs = multierror.Append(errs, fmt.Errorf("maxEventBytes must be in 1..=4MiB, got %d", c.MaxEventBytes))
	}
	if c.MaxEvents <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxEvents must be positive, got %d", c.MaxEvents))
	}
	if c.MaxPasteBytes <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxPasteBytes must be positive, got %d", c.MaxPasteBytes))
	}
	if c.MaxUserPayloadBytes <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("maxUserPayloadBytes must be positive, got %d", c.MaxUserPayloadBytes))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}
