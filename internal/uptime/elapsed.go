package uptime

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const maxSeconds = math.MaxInt64 / int64(time.Second)

// parseElapsed parses the elapsed-time column printed by ps. Plain unsigned
// decimals are seconds (etimes); "[[dd-]hh:]mm:ss" is the etime clock form.
func parseElapsed(out []byte) (time.Duration, bool) {
	if !utf8.Valid(out) {
		return 0, false
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return 0, false
	}

	var secs uint64
	var ok bool
	if strings.Contains(s, ":") {
		secs, ok = parseClock(s)
	} else {
		secs, ok = parseUnsigned(s)
	}
	if !ok || secs > uint64(maxSeconds) {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

func parseClock(s string) (uint64, bool) {
	var days uint64
	if i := strings.IndexByte(s, '-'); i >= 0 {
		d, ok := parseUnsigned(s[:i])
		if !ok {
			return 0, false
		}
		days = d
		s = s[i+1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	var hours uint64
	if len(parts) == 3 {
		h, ok := parseUnsigned(parts[0])
		if !ok {
			return 0, false
		}
		hours = h
		parts = parts[1:]
	}
	mins, ok := parseUnsigned(parts[0])
	if !ok || mins >= 60 {
		return 0, false
	}
	secs, ok := parseUnsigned(parts[1])
	if !ok || secs >= 60 {
		return 0, false
	}

	if days > uint64(maxSeconds)/86400 || hours > uint64(maxSeconds)/3600 {
		return 0, false
	}
	return days*86400 + hours*3600 + mins*60 + secs, true
}

// parseUnsigned accepts only ASCII digits; ParseUint rejects any sign.
func parseUnsigned(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
