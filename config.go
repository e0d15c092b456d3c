package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

const configDirName = "renamer"

// Config holds the persisted user settings.
type Config struct {
	Editor string `toml:"editor"`
}

// DefaultConfig prefers $EDITOR, falling back to vim.
func DefaultConfig() Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	return Config{Editor: editor}
}

// ConfigPath returns the location of the persisted config file.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, configDirName, "config.toml")
}

// LoadConfig reads the config file at path, writing the defaults there on
// first run. A file that exists but does not parse is an error; the user's
// settings are never silently replaced.
func LoadConfig(path string) (Config, error) {
	logger := getLogger("config")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		if werr := writeConfig(path, cfg); werr != nil {
			logger.Warn().Err(werr).Str("path", path).Msg("Could not persist default config")
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Editor == "" {
		cfg.Editor = DefaultConfig().Editor
	}

	logger.Debug().Str("path", path).Str("editor", cfg.Editor).Msg("Config loaded")
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
