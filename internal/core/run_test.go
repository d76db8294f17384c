package core

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procuptime/internal/uptime"
)

type stubReader struct {
	strategy uptime.Strategy
	uptime   time.Duration
	ok       bool
	delay    time.Duration

	running *atomic.Int32
	peak    *atomic.Int32
}

func (s *stubReader) Strategy() uptime.Strategy { return s.strategy }

func (s *stubReader) Uptime(ctx context.Context) (time.Duration, bool) {
	if s.running != nil {
		n := s.running.Add(1)
		defer s.running.Add(-1)
		for {
			p := s.peak.Load()
			if n <= p || s.peak.CompareAndSwap(p, n) {
				break
			}
		}
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return 0, false
		}
	}
	return s.uptime, s.ok
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestNewRun_ClampsParallelism(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 1},
		{in: 0, want: 1},
		{in: 4, want: 4},
		{in: 64, want: 64},
		{in: 1000, want: 64},
	}

	for _, tt := range tests {
		run := NewRun(tt.in, time.Second, nil, logr.Discard())
		assert.Equal(t, tt.want, run.Parallelism(), "parallelism %d", tt.in)
	}
}

func TestCollectAll_Empty(t *testing.T) {
	run := NewRun(4, time.Second, nil, logr.Discard())
	assert.Empty(t, run.CollectAll(context.Background()))
}

func TestCollectAll_PreservesOrderAndOutcome(t *testing.T) {
	stamp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	run := NewRun(2, time.Second, fixedClock(stamp), testr.New(t))

	// The slow reader registered first must still be reported first.
	run.Register(&stubReader{strategy: uptime.StrategyPS, uptime: 3 * time.Second, ok: true, delay: 30 * time.Millisecond})
	run.Register(&stubReader{strategy: uptime.StrategyProcFS, uptime: 1500 * time.Millisecond, ok: true})
	run.Register(&stubReader{strategy: uptime.StrategyGopsutil})

	results := run.CollectAll(context.Background())
	require.Len(t, results, 3)

	assert.Equal(t, "ps", results[0].Strategy)
	require.True(t, results[0].OK)
	assert.Equal(t, int64(3000), *results[0].UptimeMS)

	assert.Equal(t, "procfs", results[1].Strategy)
	require.True(t, results[1].OK)
	assert.Equal(t, int64(1500), *results[1].UptimeMS)

	assert.Equal(t, "gopsutil", results[2].Strategy)
	assert.False(t, results[2].OK)
	assert.Nil(t, results[2].UptimeMS, "absent uptime must not be reported as zero")
	assert.False(t, results[2].TimedOut)

	for _, r := range results {
		assert.Equal(t, stamp, r.StartedAt)
		assert.Equal(t, stamp, r.EndedAt)
	}
}

func TestCollectAll_Timeout(t *testing.T) {
	run := NewRun(1, 20*time.Millisecond, nil, logr.Discard())
	run.Register(&stubReader{strategy: uptime.StrategyPS, uptime: time.Second, ok: true, delay: 5 * time.Second})

	start := time.Now()
	results := run.CollectAll(context.Background())
	require.Len(t, results, 1)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, results[0].OK)
	assert.True(t, results[0].TimedOut)
	assert.Nil(t, results[0].UptimeMS)
}

func TestCollectAll_RespectsParallelism(t *testing.T) {
	var running, peak atomic.Int32
	run := NewRun(2, time.Second, nil, logr.Discard())
	for i := 0; i < 6; i++ {
		run.Register(&stubReader{
			strategy: uptime.StrategyPS,
			ok:       true,
			delay:    20 * time.Millisecond,
			running:  &running,
			peak:     &peak,
		})
	}

	results := run.CollectAll(context.Background())
	require.Len(t, results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	for _, r := range results {
		assert.True(t, r.OK)
	}
}

func TestCollectAll_RealReaders(t *testing.T) {
	run := NewRun(4, 5*time.Second, nil, testr.New(t))
	for _, s := range uptime.Strategies() {
		r, err := uptime.NewReader(s)
		require.NoError(t, err)
		run.Register(r)
	}

	results := run.CollectAll(context.Background())
	require.Len(t, results, len(uptime.Strategies()))
	// The default strategy is first and must work everywhere tests run.
	assert.True(t, results[0].OK)
	assert.GreaterOrEqual(t, *results[0].UptimeMS, int64(0))
}
