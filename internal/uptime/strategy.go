package uptime

import (
	"fmt"
	"strings"
	"time"
)

// Strategy identifies how the process start time is obtained.
type Strategy string

const (
	// StrategyAuto resolves to DefaultStrategy.
	StrategyAuto Strategy = "auto"
	// StrategyProcessTimes uses GetProcessTimes and the system FILETIME (Windows).
	StrategyProcessTimes Strategy = "process-times"
	// StrategyProcFS uses the modification time of /proc/self (Linux).
	StrategyProcFS Strategy = "procfs"
	// StrategyPS runs ps and reads the elapsed-seconds field.
	StrategyPS Strategy = "ps"
	// StrategyGopsutil uses gopsutil's process create time.
	StrategyGopsutil Strategy = "gopsutil"
)

var knownStrategies = []Strategy{
	StrategyProcessTimes,
	StrategyProcFS,
	StrategyPS,
	StrategyGopsutil,
}

// Resolution is the finest step the strategy can report.
func (s Strategy) Resolution() time.Duration {
	switch s {
	case StrategyProcessTimes, StrategyGopsutil:
		return time.Millisecond
	case StrategyProcFS:
		return time.Nanosecond
	case StrategyPS:
		return time.Second
	default:
		return 0
	}
}

// Spawns reports whether the strategy launches a subprocess per query.
func (s Strategy) Spawns() bool {
	return s == StrategyPS
}

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy maps a name to a Strategy. An empty name means StrategyAuto.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == string(StrategyAuto) {
		return StrategyAuto, nil
	}
	for _, s := range knownStrategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", name)
}

// DefaultStrategy returns the strategy Get uses on this platform.
func DefaultStrategy() Strategy {
	return defaultStrategy
}

// Strategies lists the strategies built for this platform, default first.
func Strategies() []Strategy {
	out := make([]Strategy, len(platformStrategies))
	copy(out, platformStrategies)
	return out
}

// Supported reports whether s is built for this platform.
func Supported(s Strategy) bool {
	if s == StrategyAuto {
		return true
	}
	for _, ps := range platformStrategies {
		if ps == s {
			return true
		}
	}
	return false
}
