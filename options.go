package engine

import (
	"time"

	"go.uber.org/zap"
)

// DriverOption configures a Driver at construction.
type DriverOption func(*Driver)

// WithLogger replaces the driver's logger. The scheduler and window
// threads log through it too. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) DriverOption {
	return func(d *Driver) {
		if log != nil {
			d.log = log
		}
	}
}

// WithClock replaces the clock used for frame-rate gating. Intended for
// tests.
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// WithPollInterval sets the pause between polling passes. Defaults to
// one millisecond.
func WithPollInterval(interval time.Duration) DriverOption {
	return func(d *Driver) {
		if interval > 0 {
			d.pollInterval = interval
		}
	}
}

// WithSleep replaces the function used to pause between polling passes.
// Intended for tests.
func WithSleep(sleep func(time.Duration)) DriverOption {
	return func(d *Driver) {
		if sleep != nil {
			d.sleep = sleep
		}
	}
}

// WindowOption configures a Window at construction.
type WindowOption func(*Window)

// WithWindowClock replaces the clock a window measures frame times with.
// Intended for tests.
func WithWindowClock(now func() time.Time) WindowOption {
	return func(w *Window) {
		if now != nil {
			w.now = now
		}
	}
}

// WithClearColor sets the frame background color.
func WithClearColor(c Color) WindowOption {
	return func(w *Window) {
		w.clearColor = c
	}
}
