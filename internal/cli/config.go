package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds CLI defaults loaded from a TOML config file. Flags always
// override config values, which override built-in defaults.
//
// Search order: ./diskmap.toml, then $XDG_CONFIG_HOME/diskmap/config.toml
// (or ~/.config/diskmap/config.toml). The first file found wins.
type Config struct {
	// Padding is the default grid padding.
	Padding int `toml:"padding"`

	// Radius is the default unit-disk radius for rendering.
	Radius float64 `toml:"radius"`

	// Unweighted disables structural weights by default.
	Unweighted bool `toml:"unweighted"`

	// Format is the default output format for the render command.
	Format string `toml:"format"`

	// NoCache disables the artifact cache.
	NoCache bool `toml:"no_cache"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Padding: 0,
		Radius:  0, // pipeline default
		Format:  "svg",
	}
}

// configPaths returns candidate config file locations, most specific first.
func configPaths() []string {
	paths := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}

// loadConfigOrDefault loads the first config file found, falling back to
// built-in defaults. A malformed file is reported and skipped rather than
// aborting the CLI.
func loadConfigOrDefault(logger *log.Logger) *Config {
	cfg := defaultConfig()
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			logger.Warn("ignoring malformed config", "path", path, "err", err)
			return defaultConfig()
		}
		logger.Debug("loaded config", "path", path)
		return cfg
	}
	return cfg
}
