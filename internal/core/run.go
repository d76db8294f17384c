// Package core runs several uptime readers side by side so their answers can be compared.
package core

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"procuptime/internal/uptime"
)

const (
	minParallelism = 1
	maxParallelism = 64
)

// Result captures the outcome of a single reader.
type Result struct {
	Strategy  string    `json:"strategy" yaml:"strategy"`
	OK        bool      `json:"ok" yaml:"ok"`
	UptimeMS  *int64    `json:"uptime_ms,omitempty" yaml:"uptime_ms,omitempty"`
	TimedOut  bool      `json:"timed_out,omitempty" yaml:"timed_out,omitempty"`
	StartedAt time.Time `json:"started_utc" yaml:"started_utc"`
	EndedAt   time.Time `json:"ended_utc" yaml:"ended_utc"`
}

// Run orchestrates the execution of multiple readers with concurrency control.
type Run struct {
	readers     []uptime.Reader
	parallelism int
	timeout     time.Duration
	clock       uptime.Clock
	logger      logr.Logger
}

// NewRun creates a new Run orchestrator. Parallelism is clamped to 1..64.
func NewRun(parallelism int, timeout time.Duration, clock uptime.Clock, logger logr.Logger) *Run {
	if clock == nil {
		clock = uptime.SystemClock{}
	}
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &Run{
		parallelism: ClampParallelism(parallelism),
		timeout:     timeout,
		clock:       clock,
		logger:      logger,
	}
}

// ClampParallelism bounds n to the range NewRun accepts.
func ClampParallelism(n int) int {
	if n < minParallelism {
		return minParallelism
	}
	if n > maxParallelism {
		return maxParallelism
	}
	return n
}

// Register adds a reader to the execution list.
func (r *Run) Register(reader uptime.Reader) {
	r.readers = append(r.readers, reader)
}

// Parallelism returns the effective concurrency limit.
func (r *Run) Parallelism() int {
	return r.parallelism
}

// CollectAll queries every registered reader and returns one Result per
// reader in registration order.
func (r *Run) CollectAll(ctx context.Context) []Result {
	results := make([]Result, len(r.readers))
	if len(r.readers) == 0 {
		return results
	}

	semaphore := make(chan struct{}, r.parallelism)
	var wg sync.WaitGroup

	for i, reader := range r.readers {
		wg.Add(1)
		go func(i int, reader uptime.Reader) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = r.query(ctx, reader)
		}(i, reader)
	}

	wg.Wait()
	return results
}

// query runs a single reader bounded by the per-reader timeout.
func (r *Run) query(parentCtx context.Context, reader uptime.Reader) Result {
	res := Result{
		Strategy:  reader.Strategy().String(),
		StartedAt: r.clock.Now().UTC(),
	}

	ctx := parentCtx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parentCtx, r.timeout)
		defer cancel()
	}

	select {
	case out := <-uptime.Async(ctx, reader):
		if out.OK {
			ms := out.Uptime.Milliseconds()
			res.OK = true
			res.UptimeMS = &ms
		}
	case <-ctx.Done():
		res.TimedOut = true
	}
	res.EndedAt = r.clock.Now().UTC()

	if res.OK {
		r.logger.V(1).Info("reader completed", "strategy", res.Strategy, "uptime_ms", *res.UptimeMS)
	} else {
		r.logger.Info("reader produced no uptime", "strategy", res.Strategy, "timed_out", res.TimedOut)
	}
	return res
}
