// Package schema defines the data structures for procuptime's output formats.
package schema

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"procuptime/internal/core"
	"procuptime/internal/uptime"
)

// UptimeReport is the output of the show command. UptimeMS and Uptime are
// omitted when the measurement was unavailable.
type UptimeReport struct {
	Command       string `json:"command" yaml:"command"`
	PID           int    `json:"pid" yaml:"pid"`
	OS            string `json:"os" yaml:"os"`
	Arch          string `json:"arch" yaml:"arch"`
	Strategy      string `json:"strategy" yaml:"strategy"`
	Resolution    string `json:"resolution" yaml:"resolution"`
	SpawnsProcess bool   `json:"spawns_process" yaml:"spawns_process"`
	Async         bool   `json:"async" yaml:"async"`
	Available     bool   `json:"available" yaml:"available"`
	UptimeMS      *int64 `json:"uptime_ms,omitempty" yaml:"uptime_ms,omitempty"`
	Uptime        string `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	TimestampUTC  string `json:"timestamp_utc" yaml:"timestamp_utc"`
}

// NewUptimeReport creates an UptimeReport for the current process.
func NewUptimeReport(strategy uptime.Strategy, async bool, d time.Duration, ok bool, timestamp time.Time) *UptimeReport {
	r := &UptimeReport{
		Command:       "show",
		PID:           os.Getpid(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		Strategy:      strategy.String(),
		Resolution:    strategy.Resolution().String(),
		SpawnsProcess: strategy.Spawns(),
		Async:         async,
		Available:     ok,
		TimestampUTC:  timestamp.UTC().Format(time.RFC3339),
	}
	if ok {
		ms := d.Milliseconds()
		r.UptimeMS = &ms
		r.Uptime = FormatUptime(d)
	}
	return r
}

// StrategyInfo describes one strategy available on this platform.
type StrategyInfo struct {
	Name          string `json:"name" yaml:"name"`
	Default       bool   `json:"default" yaml:"default"`
	Resolution    string `json:"resolution" yaml:"resolution"`
	SpawnsProcess bool   `json:"spawns_process" yaml:"spawns_process"`
}

// StrategiesReport is the output of the strategies command.
type StrategiesReport struct {
	Command    string         `json:"command" yaml:"command"`
	OS         string         `json:"os" yaml:"os"`
	Default    string         `json:"default" yaml:"default"`
	Strategies []StrategyInfo `json:"strategies" yaml:"strategies"`
}

// NewStrategiesReport lists the given strategies, marking def as the default.
func NewStrategiesReport(def uptime.Strategy, strategies []uptime.Strategy) *StrategiesReport {
	r := &StrategiesReport{
		Command:    "strategies",
		OS:         runtime.GOOS,
		Default:    def.String(),
		Strategies: make([]StrategyInfo, 0, len(strategies)),
	}
	for _, s := range strategies {
		r.Strategies = append(r.Strategies, StrategyInfo{
			Name:          s.String(),
			Default:       s == def,
			Resolution:    s.Resolution().String(),
			SpawnsProcess: s.Spawns(),
		})
	}
	return r
}

// CompareReport is the output of the compare command.
type CompareReport struct {
	Command      string        `json:"command" yaml:"command"`
	PID          int           `json:"pid" yaml:"pid"`
	Parallelism  int           `json:"parallelism" yaml:"parallelism"`
	Timeout      string        `json:"timeout" yaml:"timeout"`
	Results      []core.Result `json:"results" yaml:"results"`
	TimestampUTC string        `json:"timestamp_utc" yaml:"timestamp_utc"`
}

// NewCompareReport creates a CompareReport from runner results.
func NewCompareReport(parallelism int, timeout time.Duration, results []core.Result, timestamp time.Time) *CompareReport {
	return &CompareReport{
		Command:      "compare",
		PID:          os.Getpid(),
		Parallelism:  parallelism,
		Timeout:      timeout.String(),
		Results:      results,
		TimestampUTC: timestamp.UTC().Format(time.RFC3339),
	}
}

// FormatUptime renders d as days, hours, minutes and seconds, e.g. "1d2h3m4s".
// Sub-second parts are shown only when the uptime is under a minute.
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return d.Round(time.Millisecond).String()
	}
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm%ds", days, hours, mins, secs)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh%dm%ds", hours, mins, secs)
	}
	return fmt.Sprintf("%dm%ds", mins, secs)
}
