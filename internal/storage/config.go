package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds fern user configuration.
type Config struct {
	Theme        string   `json:"theme"`
	Root         string   `json:"root"`          // starting directory for the navigation pane
	NavLeft      bool     `json:"nav_left"`      // dock the navigation pane on the left
	MarkdownOnly bool     `json:"markdown_only"` // show only markdown files in the tree
	Suffixes     []string `json:"suffixes"`      // recognized file suffixes for general browsing
	path         string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:   "default",
		Root:    "",
		NavLeft: true,
	}
}

// LoadConfig loads configuration from the standard config directory,
// writing defaults on first run.
func LoadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "config.json")
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Save()
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.path = path
	return &cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.json")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(c.path, data, 0o644)
}

// DataDir returns the data directory for persistent storage.
func DataDir() (string, error) {
	return platformDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func configDir() (string, error) {
	return platformDir("XDG_CONFIG_HOME", ".config")
}

func platformDir(xdgVar, linuxDefault string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "fern")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			dir = filepath.Join(appData, "fern")
		} else {
			dir = filepath.Join(home, ".fern")
		}
	default: // Linux, BSD, etc.
		if xdg := os.Getenv(xdgVar); xdg != "" {
			dir = filepath.Join(xdg, "fern")
		} else {
			dir = filepath.Join(home, linuxDefault, "fern")
		}
	}

	return dir, nil
}
