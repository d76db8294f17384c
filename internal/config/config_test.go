package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procuptime/internal/uptime"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, uptime.StrategyAuto, cfg.Strategy())
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "json", cfg.Output())
	assert.Equal(t, 4, cfg.Parallel())
	assert.Empty(t, cfg.LogFile())
	assert.False(t, cfg.Verbose())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvStrategy: uptime.DefaultStrategy().String(),
		EnvTimeout:  "1d",
		EnvOutput:   "YAML",
		EnvParallel: "8",
		EnvLogFile:  " /tmp/procuptime.log ",
		EnvVerbose:  "yes",
	}))
	require.NoError(t, err)

	assert.Equal(t, uptime.DefaultStrategy(), cfg.Strategy())
	assert.Equal(t, 24*time.Hour, cfg.Timeout())
	assert.Equal(t, "yaml", cfg.Output())
	assert.Equal(t, 8, cfg.Parallel())
	assert.Equal(t, "/tmp/procuptime.log", cfg.LogFile())
	assert.True(t, cfg.Verbose())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown strategy", env: map[string]string{EnvStrategy: "sundial"}, want: EnvStrategy},
		{name: "bad timeout", env: map[string]string{EnvTimeout: "later"}, want: EnvTimeout},
		{name: "zero timeout", env: map[string]string{EnvTimeout: "0s"}, want: EnvTimeout},
		{name: "bad output", env: map[string]string{EnvOutput: "xml"}, want: EnvOutput},
		{name: "bad parallel", env: map[string]string{EnvParallel: "many"}, want: EnvParallel},
		{name: "parallel out of range", env: map[string]string{EnvParallel: "100"}, want: EnvParallel},
		{name: "bad verbose", env: map[string]string{EnvVerbose: "loud"}, want: EnvVerbose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromEnv_UnsupportedStrategy(t *testing.T) {
	var missing uptime.Strategy
	for _, s := range []uptime.Strategy{uptime.StrategyProcessTimes, uptime.StrategyProcFS, uptime.StrategyPS, uptime.StrategyGopsutil} {
		if !uptime.Supported(s) {
			missing = s
			break
		}
	}
	if missing == "" {
		t.Skip("every strategy is supported here")
	}

	_, err := FromEnv(envMap(map[string]string{EnvStrategy: missing.String()}))
	require.Error(t, err)
	assert.ErrorIs(t, err, uptime.ErrUnsupported)
}

func TestNew_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PROCUPTIME_OUTPUT=text\nPROCUPTIME_PARALLEL=2\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv.Load never overrides existing variables; clear ours first.
	t.Setenv(EnvOutput, "")
	require.NoError(t, os.Unsetenv(EnvOutput))
	t.Setenv(EnvParallel, "")
	require.NoError(t, os.Unsetenv(EnvParallel))

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output())
	assert.Equal(t, 2, cfg.Parallel())
}
