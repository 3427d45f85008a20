package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Main SQLite database
	LogDir   string // Best-effort failure log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "areuok.db"),
		LogDir:   filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory under the user's
// config home (e.g. ~/.config/areuok).
func DefaultBaseDir() string {
	return filepath.Join(xdg.ConfigHome, "areuok")
}
