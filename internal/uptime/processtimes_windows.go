//go:build windows

package uptime

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// processTimesProbe compares the process creation FILETIME with the current
// system FILETIME. Both share the 1601 epoch, so no conversion to Unix time
// is needed.
func processTimesProbe() probe {
	return func(context.Context) (time.Duration, error) {
		proc, err := windows.GetCurrentProcess()
		if err != nil {
			return 0, fmt.Errorf("%w: current process handle: %v", ErrUnavailable, err)
		}
		// The pseudo handle is -1; only zero means no handle.
		if proc == 0 {
			return 0, fmt.Errorf("%w: invalid process handle", ErrUnavailable)
		}

		var creation, exit, kernel, user windows.Filetime
		if err := windows.GetProcessTimes(proc, &creation, &exit, &kernel, &user); err != nil {
			return 0, fmt.Errorf("%w: GetProcessTimes: %v", ErrUnavailable, err)
		}

		var now windows.Filetime
		windows.GetSystemTimeAsFileTime(&now)

		d, ok := ticksToDuration(
			filetimeTicks(creation.HighDateTime, creation.LowDateTime),
			filetimeTicks(now.HighDateTime, now.LowDateTime),
		)
		if !ok {
			return 0, fmt.Errorf("%w: %w", ErrUnavailable, ErrClockSkew)
		}
		return d, nil
	}
}
