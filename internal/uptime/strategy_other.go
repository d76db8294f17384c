//go:build !linux && !windows

package uptime

import (
	"fmt"

	"procuptime/internal/sysutil"
)

// No procfs here; gopsutil binds sysctl/kvm directly, ps stays opt-in.
var defaultStrategy = StrategyGopsutil

var platformStrategies = []Strategy{StrategyGopsutil, StrategyPS}

func newProbe(s Strategy, pid int, clock Clock) (probe, error) {
	switch s {
	case StrategyGopsutil:
		return gopsutilProbe(int32(pid), clock), nil
	case StrategyPS:
		return psProbe(sysutil.Output, pid), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
}
