package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/services"
)

// configFileName is the TOML file inside the config directory.
const configFileName = "config.toml"

// Config holds the process-wide Trolly settings. It is constructed at
// startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	// DataDir is where the database lives. Empty means the store's
	// default (~/.trolly/data).
	DataDir string `toml:"data_dir"`

	// Authority is the content URI authority the provider answers for.
	Authority string `toml:"authority"`

	// UntitledLabel names items inserted without a label.
	UntitledLabel string `toml:"untitled_label"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Authority:     domain.DefaultAuthority,
		UntitledLabel: services.DefaultUntitledLabel,
	}
}

// Load reads the configuration from configDir, filling any unset
// field with its default. A missing file yields the defaults.
// If configDir is empty, defaults to ~/.trolly.
func Load(configDir string) (Config, error) {
	dir, err := resolveDir(configDir)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Authority == "" {
		cfg.Authority = domain.DefaultAuthority
	}
	if cfg.UntitledLabel == "" {
		cfg.UntitledLabel = services.DefaultUntitledLabel
	}
	return cfg, nil
}

// Save writes the configuration to configDir, creating it if needed.
func Save(configDir string, cfg Config) error {
	dir, err := resolveDir(configDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFileName), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// resolveDir applies the ~/.trolly default.
func resolveDir(configDir string) (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trolly"), nil
}
