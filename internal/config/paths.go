// ABOUTME: Standard filesystem paths for kbdproto settings
// ABOUTME: Resolves $XDG_CONFIG_HOME/kbdproto/ for global and .kbdproto.yaml for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName          = "kbdproto"
	settingsFileName    = "settings.yaml"
	projectSettingsName = ".kbdproto.yaml"

	// EnvConfigDir overrides the global settings directory.
	EnvConfigDir = "KBDPROTO_CONFIG_DIR"
)

// GlobalDir returns the user-global settings directory.
func GlobalDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "."+appDirName)
		}
		return filepath.Join(home, "."+appDirName)
	}
	return filepath.Join(base, appDirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), settingsFileName)
}

// ProjectSettingsFile returns the path to the project settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectSettingsName)
}

// SettingsFiles returns every settings path in load order (global first).
func SettingsFiles(projectRoot string) []string {
	return []string{GlobalSettingsFile(), ProjectSettingsFile(projectRoot)}
}
