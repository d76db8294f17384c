package uptime

import (
	"context"
	"time"
)

// Result is the outcome of an asynchronous query. When OK is false Uptime
// carries no meaning.
type Result struct {
	Uptime time.Duration
	OK     bool
}

// Async runs r.Uptime off the caller's goroutine and delivers exactly one
// Result on the returned channel. Strategies that do not spawn a subprocess
// never block, so their result is computed inline and is ready on return.
func Async(ctx context.Context, r Reader) <-chan Result {
	ch := make(chan Result, 1)
	if !r.Strategy().Spawns() {
		d, ok := r.Uptime(ctx)
		ch <- Result{Uptime: d, OK: ok}
		return ch
	}
	go func() {
		d, ok := r.Uptime(ctx)
		ch <- Result{Uptime: d, OK: ok}
	}()
	return ch
}

// GetAsync is the asynchronous form of Get.
func GetAsync(ctx context.Context) <-chan Result {
	r, err := NewReader(DefaultStrategy())
	if err != nil {
		ch := make(chan Result, 1)
		ch <- Result{}
		return ch
	}
	return Async(ctx, r)
}
