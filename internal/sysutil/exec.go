// Package sysutil wraps the short-lived helper commands procuptime may spawn.
package sysutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecWithContext executes a command with context support, returning stdout, stderr, and error.
// The child is killed when ctx is done.
func ExecWithContext(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), err
}

// Output runs a command and returns its stdout. On failure the error carries
// the command name and whatever it wrote to stderr.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	stdout, stderr, err := ExecWithContext(ctx, name, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", name, ctxErr)
		}
		stderrStr := strings.TrimSpace(string(stderr))
		if stderrStr == "" {
			return nil, fmt.Errorf("%s failed: %w", name, err)
		}
		return nil, fmt.Errorf("%s failed: %w (stderr: %s)", name, err, stderrStr)
	}
	return stdout, nil
}
