//go:build !windows

package uptime

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"
)

// commandRunner runs a command and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// elapsedField is the ps column holding the process age. darwin's ps has no
// etimes, only the [[dd-]hh:]mm:ss etime column.
func elapsedField() string {
	if runtime.GOOS == "darwin" {
		return "etime"
	}
	return "etimes"
}

// psProbe asks ps for the elapsed time of pid. An empty column title ("=")
// suppresses the header line.
func psProbe(run commandRunner, pid int) probe {
	return func(ctx context.Context) (time.Duration, error) {
		out, err := run(ctx, "ps", "-o", elapsedField()+"=", "-p", strconv.Itoa(pid))
		if err != nil {
			return 0, fmt.Errorf("%w: ps: %v", ErrUnavailable, err)
		}
		d, ok := parseElapsed(out)
		if !ok {
			return 0, fmt.Errorf("%w: unparseable ps output %q", ErrUnavailable, out)
		}
		return d, nil
	}
}
