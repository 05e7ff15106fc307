// Package paths provides centralized path handling for unitconv.
// Locations follow the XDG Base Directory layout; the XDG_* variables are
// read on every call so they can be changed at runtime.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Directory and file names
const (
	// AppName is the directory name used under each XDG base directory
	AppName = "unitconv"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "unitconv.log"
)

// ConfigDir returns $XDG_CONFIG_HOME/unitconv
func ConfigDir() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", xdg.ConfigHome), AppName)
}

// StateDir returns $XDG_STATE_HOME/unitconv
func StateDir() string {
	return filepath.Join(baseDir("XDG_STATE_HOME", xdg.StateHome), AppName)
}

// ConfigFile returns the default configuration file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// baseDir prefers the environment over the value xdg computed at startup
func baseDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	return fallback
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
