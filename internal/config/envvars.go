// ABOUTME: Environment handling for settings: ${VAR} expansion and KBDPROTO_* overrides
// ABOUTME: Unset vars expand to empty; malformed override values are reported as errors

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Environment overrides, applied after the settings files.
const (
	EnvFlags    = "KBDPROTO_FLAGS"
	EnvDefer    = "KBDPROTO_DEFER"
	EnvLogLevel = "KBDPROTO_LOG_LEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.ProbeTimeout = expandEnv(s.ProbeTimeout)
	s.LogLevel = expandEnv(s.LogLevel)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyEnv overrides s with any KBDPROTO_* variables that are set.
func applyEnv(s *Settings) error {
	if v, ok := lookupEnv(EnvFlags); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s=%q: want a non-negative integer", EnvFlags, v)
		}
		s.Flags = &n
	}
	if v, ok := lookupEnv(EnvDefer); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDefer, v, err)
		}
		s.DeferOnComplexInput = &b
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		s.LogLevel = v
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
