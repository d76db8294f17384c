// Package parse provides parsing, validation, and normalization utilities for the procuptime CLI.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekDayUnit = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([wd])`)

// ParseDuration parses a duration that may include weeks (w) and days (d) in
// addition to the units accepted by time.ParseDuration.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	converted := weekDayUnit.ReplaceAllStringFunc(s, func(match string) string {
		parts := weekDayUnit.FindStringSubmatch(match)
		if len(parts) != 3 {
			return match
		}

		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return match
		}

		switch parts[2] {
		case "w":
			// 1 week = 7 days = 168 hours
			return fmt.Sprintf("%gh", value*168)
		case "d":
			return fmt.Sprintf("%gh", value*24)
		default:
			return match
		}
	})

	d, err := time.ParseDuration(converted)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: must look like 500ms, 5s, 2m, 1d or 1w", s)
	}
	return d, nil
}
