// Package main provides the entry point for the procuptime CLI application.
package main

import (
	"os"

	"procuptime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
