//go:build !windows

package sysutil

import "os/exec"

func hideWindow(*exec.Cmd) {}
