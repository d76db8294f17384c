package parse

import (
	"fmt"
	"strings"
	"time"
)

// Output formats understood by the renderers.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// NormalizeOutput validates an --output value and returns it in canonical form.
func NormalizeOutput(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case OutputJSON, OutputYAML, OutputText:
		return v, nil
	case "":
		return OutputJSON, nil
	case "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("invalid --output %q: must be json, yaml or text", s)
	}
}

// ValidateTimeout validates the --timeout flag value.
func ValidateTimeout(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("invalid --timeout: must be positive")
	}
	return nil
}

// ValidateParallel validates the --parallel flag value.
func ValidateParallel(n int) error {
	if n < 1 || n > 64 {
		return fmt.Errorf("invalid --parallel: must be between 1 and 64")
	}
	return nil
}

// ParseBool accepts the usual spellings of a boolean environment value.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "", "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
