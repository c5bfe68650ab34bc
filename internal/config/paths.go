package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHomePath returns the keystrokes home directory.
// Honors $KEYSTROKES_HOME, defaults to ~/.keystrokes
func GetHomePath() string {
	if envHome := os.Getenv("KEYSTROKES_HOME"); envHome != "" {
		return ExpandPath(envHome)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.keystrokes" // Fallback to unexpanded path
	}
	return filepath.Join(homeDir, ".keystrokes")
}

// GetDBPath returns the path to the preferences database
func GetDBPath() string {
	return filepath.Join(GetHomePath(), "preferences.db")
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() string {
	return filepath.Join(GetHomePath(), "settings.json")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
}
