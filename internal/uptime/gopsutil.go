package uptime

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// gopsutilProbe reads the process create time (milliseconds since the Unix
// epoch) through gopsutil's native bindings.
func gopsutilProbe(pid int32, clock Clock) probe {
	return func(ctx context.Context) (time.Duration, error) {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return 0, fmt.Errorf("%w: open process %d: %v", ErrUnavailable, pid, err)
		}
		createdMS, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			return 0, fmt.Errorf("%w: create time of %d: %v", ErrUnavailable, pid, err)
		}
		return sinceStart(clock.Now(), time.UnixMilli(createdMS))
	}
}
