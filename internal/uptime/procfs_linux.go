//go:build linux

package uptime

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// procSelf is the kernel's per-process directory for the caller. Its inode is
// created when the process is, so its mtime stands in for the start time.
const procSelf = "/proc/self"

func procfsProbe(path string, clock Clock) probe {
	return func(context.Context) (time.Duration, error) {
		var st unix.Stat_t
		if err := unix.Stat(path, &st); err != nil {
			return 0, fmt.Errorf("%w: stat %s: %v", ErrUnavailable, path, err)
		}
		started := time.Unix(st.Mtim.Unix())
		return sinceStart(clock.Now(), started)
	}
}
