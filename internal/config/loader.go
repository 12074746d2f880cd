package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search path.
const FileName = "arcade.yaml"

// Load loads and validates the arcade configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml ->
// ./configs/arcade.yaml -> embedded default.
//
// Files are applied on top of the embedded defaults, so they only need the
// keys they change. A custom path that cannot be read or parsed is an error;
// unreadable files further down the search path are skipped.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, Validate(cfg)
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, Validate(candidate)
	}

	return cfg, Validate(cfg)
}

// embeddedDefaults parses defaults/arcade.yaml, falling back to
// DefaultConfig if the embedded file is broken.
func embeddedDefaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
