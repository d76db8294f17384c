//go:build windows

package uptime

import "fmt"

var defaultStrategy = StrategyProcessTimes

var platformStrategies = []Strategy{StrategyProcessTimes, StrategyGopsutil}

func newProbe(s Strategy, pid int, clock Clock) (probe, error) {
	switch s {
	case StrategyProcessTimes:
		return processTimesProbe(), nil
	case StrategyGopsutil:
		return gopsutilProbe(int32(pid), clock), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
}
