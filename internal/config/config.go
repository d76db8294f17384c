// Package config loads procuptime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"procuptime/internal/parse"
	"procuptime/internal/uptime"
)

// Environment variables read by New.
const (
	EnvStrategy = "PROCUPTIME_STRATEGY"
	EnvTimeout  = "PROCUPTIME_TIMEOUT"
	EnvOutput   = "PROCUPTIME_OUTPUT"
	EnvParallel = "PROCUPTIME_PARALLEL"
	EnvLogFile  = "PROCUPTIME_LOG_FILE"
	EnvVerbose  = "PROCUPTIME_VERBOSE"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultParallel = 4
)

// Config holds procuptime configuration. Fields are unexported to prevent modification.
type Config struct {
	strategy uptime.Strategy
	timeout  time.Duration
	output   string
	parallel int
	logFile  string
	verbose  bool
}

// New reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func New() (*Config, error) {
	_ = godotenv.Load() // ignore error if .env not found
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	strategy, err := uptime.ParseStrategy(getenv(EnvStrategy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvStrategy, err)
	}
	if !uptime.Supported(strategy) {
		return nil, fmt.Errorf("%s: %w: %s", EnvStrategy, uptime.ErrUnsupported, strategy)
	}

	timeout := defaultTimeout
	if v := getenv(EnvTimeout); v != "" {
		timeout, err = parse.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if err := parse.ValidateTimeout(timeout); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
	}

	output, err := parse.NormalizeOutput(getenv(EnvOutput))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvOutput, err)
	}

	parallel := defaultParallel
	if v := strings.TrimSpace(getenv(EnvParallel)); v != "" {
		parallel, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", EnvParallel, v)
		}
		if err := parse.ValidateParallel(parallel); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvParallel, err)
		}
	}

	verbose, err := parse.ParseBool(getenv(EnvVerbose))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvVerbose, err)
	}

	return &Config{
		strategy: strategy,
		timeout:  timeout,
		output:   output,
		parallel: parallel,
		logFile:  strings.TrimSpace(getenv(EnvLogFile)),
		verbose:  verbose,
	}, nil
}

// Getter methods (immutable from outside)

func (c *Config) Strategy() uptime.Strategy {
	return c.strategy
}

func (c *Config) Timeout() time.Duration {
	return c.timeout
}

func (c *Config) Output() string {
	return c.output
}

func (c *Config) Parallel() int {
	return c.parallel
}

func (c *Config) LogFile() string {
	return c.logFile
}

func (c *Config) Verbose() bool {
	return c.verbose
}
