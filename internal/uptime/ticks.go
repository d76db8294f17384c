package uptime

import "time"

// ticksPerMillisecond is the number of 100ns FILETIME ticks in a millisecond.
const ticksPerMillisecond = 10_000

// filetimeTicks joins the two halves of a FILETIME into a tick count.
func filetimeTicks(high, low uint32) uint64 {
	return uint64(high)<<32 | uint64(low)
}

// ticksToDuration converts the span between two tick counts to a duration
// truncated to whole milliseconds. It fails when now precedes start.
func ticksToDuration(start, now uint64) (time.Duration, bool) {
	if now < start {
		return 0, false
	}
	millis := (now - start) / ticksPerMillisecond
	return time.Duration(millis) * time.Millisecond, true
}
