package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNew_InfoOnlyByDefault(t *testing.T) {
	var buf bytes.Buffer
	log, flush := New(Options{Stderr: &buf})

	log.Info("visible", "strategy", "procfs")
	log.V(1).Info("hidden")
	flush()

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "procfs", entries[0]["strategy"])
	assert.Equal(t, "procuptime", entries[0]["logger"])
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log, flush := New(Options{Stderr: &buf, Verbose: true})

	log.V(1).Info("debug detail")
	flush()

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "debug detail", entries[0]["msg"])
}

func TestNew_LogFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "procuptime.log")
	log, flush := New(Options{Stderr: &buf, LogFile: path})

	log.Info("to both")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fileEntries := decodeLines(t, string(data))
	require.Len(t, fileEntries, 1)
	assert.Equal(t, "to both", fileEntries[0]["msg"])
	assert.Len(t, decodeLines(t, buf.String()), 1)
}
