package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all rwallet configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Vault   VaultConfig   `toml:"vault"`
}

// GeneralConfig holds ledger preferences.
type GeneralConfig struct {
	// DefaultGoal seeds the daily goal for freshly opened days.
	DefaultGoal int64 `toml:"default_goal"`
	// BoundaryHour is the hour at which the accounting day rolls over.
	// 0 means plain calendar midnight.
	BoundaryHour int    `toml:"boundary_hour"`
	Currency     string `toml:"currency"`
	DataDir      string `toml:"data_dir,omitempty"`
}

// VaultConfig holds savings vault settings.
type VaultConfig struct {
	PIN string `toml:"pin"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultGoal:  5000,
			BoundaryHour: 6,
			Currency:     "MRU",
		},
		Vault: VaultConfig{
			PIN: "1234",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rwallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rwallet")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
