// Package uptime reports how long the current process has been running.
//
// Every platform ships one or more strategies for measuring the process age.
// The active strategy is fixed at build time per GOOS (see DefaultStrategy) and
// can be overridden by constructing a Reader explicitly. Failures of any kind
// collapse into a single "unavailable" outcome: callers get false and must treat
// it as "uptime unknown", never as zero.
package uptime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
)

var (
	// ErrUnavailable wraps every reason a measurement could not be taken.
	ErrUnavailable = errors.New("uptime unavailable")
	// ErrClockSkew is reported when the start time lies in the future.
	ErrClockSkew = errors.New("process start time is after current time")
	// ErrUnsupported is returned by NewReader for strategies not built for this platform.
	ErrUnsupported = errors.New("strategy not supported on this platform")
)

// Reader measures the uptime of the current process.
type Reader interface {
	// Strategy names the technique used by this Reader.
	Strategy() Strategy
	// Uptime returns the time elapsed since the process started, or false
	// when it cannot be determined.
	Uptime(ctx context.Context) (time.Duration, bool)
}

// Clock provides time functions for testability.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Option configures a Reader.
type Option func(*options)

type options struct {
	logger logr.Logger
	clock  Clock
}

// WithLogger sets the logger receiving failure causes at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the wall clock used by strategies that compare a start
// timestamp against "now".
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// probe performs one measurement, reporting the cause on failure.
type probe func(ctx context.Context) (time.Duration, error)

type reader struct {
	strategy Strategy
	probe    probe
	logger   logr.Logger
}

// NewReader builds a Reader for the given strategy. StrategyAuto selects the
// platform default.
func NewReader(s Strategy, opts ...Option) (Reader, error) {
	o := options{
		logger: logr.Discard(),
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if s == StrategyAuto {
		s = DefaultStrategy()
	}
	p, err := newProbe(s, os.Getpid(), o.clock)
	if err != nil {
		return nil, err
	}

	return &reader{
		strategy: s,
		probe:    p,
		logger:   o.logger.WithValues("strategy", string(s)),
	}, nil
}

func (r *reader) Strategy() Strategy {
	return r.strategy
}

func (r *reader) Uptime(ctx context.Context) (time.Duration, bool) {
	d, err := r.probe(ctx)
	if err != nil {
		r.logger.V(1).Info("uptime unavailable", "reason", err.Error())
		return 0, false
	}
	if d < 0 {
		r.logger.V(1).Info("uptime unavailable", "reason", ErrClockSkew.Error())
		return 0, false
	}
	return d, true
}

// Get returns the uptime of the current process using the platform default
// strategy.
func Get() (time.Duration, bool) {
	r, err := NewReader(DefaultStrategy())
	if err != nil {
		return 0, false
	}
	return r.Uptime(context.Background())
}

// sinceStart returns now-start, failing instead of going negative.
func sinceStart(now, start time.Time) (time.Duration, error) {
	d := now.Sub(start)
	if d < 0 {
		return 0, fmt.Errorf("%w: %w (started %s, now %s)", ErrUnavailable, ErrClockSkew,
			start.UTC().Format(time.RFC3339Nano), now.UTC().Format(time.RFC3339Nano))
	}
	return d, nil
}
