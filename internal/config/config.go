// ABOUTME: Settings loading with global + project YAML merge and env overrides
// ABOUTME: Settings supply encoder defaults, the probe timeout, and the log level

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kbdproto/internal/log"
	"github.com/mauromedda/kbdproto/pkg/kbd"
)

// DefaultProbeTimeout bounds how long a probe waits for the terminal.
const DefaultProbeTimeout = 500 * time.Millisecond

// Settings holds the merged configuration. Pointer fields distinguish
// "unset" from an explicit zero so the project file can turn things off.
type Settings struct {
	Flags               *int   `yaml:"flags,omitempty"`
	DeferOnComplexInput *bool  `yaml:"defer_on_complex_input,omitempty"`
	MarkReleases        *bool  `yaml:"mark_releases,omitempty"`
	ProbeTimeout        string `yaml:"probe_timeout,omitempty"`
	LogLevel            string `yaml:"log_level,omitempty"`
}

// Load reads and merges global and project-local settings, then applies
// environment overrides. Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := applyEnv(merged); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug("loaded settings from %s", path)
	return &s, nil
}

// merge overlays project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Flags != nil {
		result.Flags = project.Flags
	}
	if project.DeferOnComplexInput != nil {
		result.DeferOnComplexInput = project.DeferOnComplexInput
	}
	if project.MarkReleases != nil {
		result.MarkReleases = project.MarkReleases
	}
	if project.ProbeTimeout != "" {
		result.ProbeTimeout = project.ProbeTimeout
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}

	return &result
}

// Validate checks the fields that need parsing.
func (s *Settings) Validate() error {
	if s.Flags != nil && *s.Flags < 0 {
		return fmt.Errorf("flags: %d is negative", *s.Flags)
	}
	if _, err := s.Timeout(); err != nil {
		return err
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// EncoderConfig builds the initial encoder configuration.
func (s *Settings) EncoderConfig() kbd.Config {
	var cfg kbd.Config
	if s.Flags != nil {
		cfg = kbd.ConfigFromFlags(*s.Flags)
	}
	if s.DeferOnComplexInput != nil {
		cfg.DeferOnComplexInput = *s.DeferOnComplexInput
	}
	if s.MarkReleases != nil {
		cfg.MarkReleases = *s.MarkReleases
	}
	return cfg
}

// Timeout returns the probe timeout, DefaultProbeTimeout when unset.
func (s *Settings) Timeout() (time.Duration, error) {
	if s.ProbeTimeout == "" {
		return DefaultProbeTimeout, nil
	}
	d, err := time.ParseDuration(s.ProbeTimeout)
	if err != nil {
		return 0, fmt.Errorf("probe_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("probe_timeout: %s is not positive", s.ProbeTimeout)
	}
	return d, nil
}

// Level returns the configured log level, info when unset.
func (s *Settings) Level() (slog.Level, error) {
	if s.LogLevel == "" {
		return log.LevelInfo, nil
	}
	return log.ParseLevel(s.LogLevel)
}
