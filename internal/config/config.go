// Package config handles the XDG configuration directory, file paths, and
// the optional config.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "itdash"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Store backend names.
const (
	StoreJSONFile = "jsonfile"
	StoreSQLite   = "sqlite"
)

const (
	// DefaultFlashDuration is how long a row/entry highlight stays on.
	DefaultFlashDuration = time.Second

	// DefaultAckDelay is the delay between a confirmed delete and the removal.
	DefaultAckDelay = time.Second

	// DefaultSyncList is the Google Tasks list the sync command mirrors into.
	DefaultSyncList = "IT Dashboard"
)

// Settings is the content of config.yaml. Zero values fall back to defaults.
type Settings struct {
	Store         string        `yaml:"store"`
	DataDir       string        `yaml:"data_dir"`
	FlashDuration time.Duration `yaml:"flash_duration"`
	AckDelay      time.Duration `yaml:"ack_delay"`
	SyncList      string        `yaml:"sync_list"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings Settings
}

// New creates a new Config with the default or specified config directory
// and loads config.yaml from it when present.
// If configDir is empty, uses XDG_CONFIG_HOME/itdash or $HOME/.config/itdash.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", SettingsFile, err)
	}
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	switch c.Settings.Store {
	case "", StoreJSONFile, StoreSQLite:
	default:
		return fmt.Errorf("invalid %s: unknown store %q", SettingsFile, c.Settings.Store)
	}
	if c.Settings.FlashDuration < 0 || c.Settings.AckDelay < 0 {
		return fmt.Errorf("invalid %s: durations must not be negative", SettingsFile)
	}
	return nil
}

func (c *Config) applyDefaults() {
	s := &c.Settings
	if s.Store == "" {
		s.Store = StoreJSONFile
	}
	if s.FlashDuration == 0 {
		s.FlashDuration = DefaultFlashDuration
	}
	if s.AckDelay == 0 {
		s.AckDelay = DefaultAckDelay
	}
	if s.SyncList == "" {
		s.SyncList = DefaultSyncList
	}
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// DataDir returns the directory holding the persistent store.
// Relative data_dir values are resolved against the config directory.
func (c *Config) DataDir() string {
	d := c.Settings.DataDir
	if d == "" {
		return filepath.Join(c.Dir, "data")
	}
	if !filepath.IsAbs(d) {
		return filepath.Join(c.Dir, d)
	}
	return d
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
