package config

import (
	"os"
	"path/filepath"
)

// Returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}

	return filepath.Join(home, ".config")
}

// Returns the path read when no config file is given.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "git_activity.yml")
}
