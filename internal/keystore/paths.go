package keystore

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "lighthouse"

// DataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/lighthouse/
// - Linux: $XDG_DATA_HOME/lighthouse/ or ~/.local/share/lighthouse/
// - Windows: %APPDATA%/lighthouse/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// DatabaseDir returns the key store directory under base, creating it.
// An empty base means DataDir.
func DatabaseDir(base string) (string, error) {
	if base == "" {
		var err error
		if base, err = DataDir(); err != nil {
			return "", err
		}
	}

	dbDir := filepath.Join(base, "keys")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
