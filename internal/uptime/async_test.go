package uptime

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_MatchesSync(t *testing.T) {
	// A fixed ps answer stands in for "same OS state".
	r := &reader{
		strategy: StrategyPS,
		probe: func(context.Context) (time.Duration, error) {
			d, _ := parseElapsed([]byte("42\n"))
			return d, nil
		},
		logger: logr.Discard(),
	}

	syncD, syncOK := r.Uptime(context.Background())
	res := <-Async(context.Background(), r)

	assert.Equal(t, Result{Uptime: syncD, OK: syncOK}, res)
	assert.Equal(t, 42*time.Second, res.Uptime)
}

func TestAsync_NonSpawningResolvesImmediately(t *testing.T) {
	var calls atomic.Int32
	r := &reader{
		strategy: StrategyProcFS,
		probe: func(context.Context) (time.Duration, error) {
			calls.Add(1)
			return time.Minute, nil
		},
		logger: logr.Discard(),
	}

	ch := Async(context.Background(), r)
	require.Len(t, ch, 1, "result should already be buffered")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, Result{Uptime: time.Minute, OK: true}, <-ch)
}

func TestAsync_SpawningRunsOffCaller(t *testing.T) {
	release := make(chan struct{})
	r := &reader{
		strategy: StrategyPS,
		probe: func(context.Context) (time.Duration, error) {
			<-release
			return 3 * time.Second, nil
		},
		logger: logr.Discard(),
	}

	ch := Async(context.Background(), r)
	select {
	case <-ch:
		t.Fatal("result delivered before the probe finished")
	default:
	}

	close(release)
	select {
	case res := <-ch:
		assert.Equal(t, Result{Uptime: 3 * time.Second, OK: true}, res)
	case <-time.After(5 * time.Second):
		t.Fatal("async result never arrived")
	}
}

func TestAsync_FailureIsAbsence(t *testing.T) {
	r := &reader{
		strategy: StrategyPS,
		probe: func(context.Context) (time.Duration, error) {
			return 0, ErrUnavailable
		},
		logger: logr.Discard(),
	}

	res := <-Async(context.Background(), r)
	assert.False(t, res.OK)
}

func TestGetAsync_AgreesWithGet(t *testing.T) {
	syncD, ok := Get()
	require.True(t, ok)

	res := <-GetAsync(context.Background())
	require.True(t, res.OK)

	assert.GreaterOrEqual(t, res.Uptime, syncD-DefaultStrategy().Resolution())
	assert.InDelta(t, float64(syncD), float64(res.Uptime), float64(time.Second))
}
