package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/config.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read is an error; the other locations
// are skipped when missing. A file that is found but does not parse is always
// an error.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Log.File = ExpandHome(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return decodeFile(customPath, data)
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "runner.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			return decodeFile(path, data)
		}
	}

	// Use embedded default YAML
	if c, err := decode(defaultRunnerYAML); err == nil {
		return c, nil
	}
	return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
}

func decodeFile(path string, data []byte) (RunnerConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

// Dir returns ~/.runner, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
