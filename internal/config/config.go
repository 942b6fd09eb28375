package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config contains settings for the serve command. All fields have working
// defaults; a config file only needs the keys it wants to change.
type Config struct {
	Addr        string `toml:"addr"`
	MaxLength   int    `toml:"max_length"`
	OpenBrowser bool   `toml:"open_browser"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        "127.0.0.1:5000",
		MaxLength:   25,
		OpenBrowser: false,
	}
}

// Load reads a TOML config file, applying its keys over the defaults. A
// missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be positive, got %d", c.MaxLength)
	}
	return nil
}
