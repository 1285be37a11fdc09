package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AppName is the directory name used under the platform data dir.
const AppName = "typist"

// Config holds runtime settings for the storage engine
type Config struct {
	DataDir      string
	DatabasePath string
}

// Load reads an optional .env file and environment overrides.
// TYPIST_DATA_DIR replaces the whole data directory when set.
func Load() *Config {
	// Missing .env is fine; environment variables still apply
	_ = godotenv.Load()

	dir := os.Getenv("TYPIST_DATA_DIR")
	if dir == "" {
		dir = filepath.Join(dataHome(), AppName)
	}

	return &Config{
		DataDir:      dir,
		DatabasePath: filepath.Join(dir, "data.db"),
	}
}

// dataHome returns the platform data directory or a fallback.
func dataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}
