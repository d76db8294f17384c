//go:build linux

package uptime

import (
	"fmt"

	"procuptime/internal/sysutil"
)

var defaultStrategy = StrategyProcFS

var platformStrategies = []Strategy{StrategyProcFS, StrategyPS, StrategyGopsutil}

func newProbe(s Strategy, pid int, clock Clock) (probe, error) {
	switch s {
	case StrategyProcFS:
		return procfsProbe(procSelf, clock), nil
	case StrategyPS:
		return psProbe(sysutil.Output, pid), nil
	case StrategyGopsutil:
		return gopsutilProbe(int32(pid), clock), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
}
