// Package config loads the southpole CLI configuration and user-supplied
// scenario files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/WynonaL/southpole/internal/scenario"
)

// Defaults for a fresh configuration.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "table"
	DefaultBaseline     = "b"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".southpole"

// Config is the persisted CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Compare CompareConfig `yaml:"compare"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// OutputConfig controls report rendering defaults.
type OutputConfig struct {
	// DefaultFormat is "table" or "json".
	DefaultFormat string `yaml:"default_format"`
}

// CompareConfig controls scenario comparison defaults.
type CompareConfig struct {
	// Baseline is the scenario name deltas are computed against.
	Baseline string `yaml:"baseline"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Output:  OutputConfig{DefaultFormat: DefaultOutputFormat},
		Compare: CompareConfig{Baseline: DefaultBaseline},
	}
}

// DefaultPath returns the per-user config file path,
// $HOME/.southpole/config.yaml. SOUTHPOLE_HOME overrides the config
// directory entirely.
func DefaultPath() (string, error) {
	if spHome := os.Getenv("SOUTHPOLE_HOME"); spHome != "" {
		return filepath.Join(spHome, "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, "config.yaml"), nil
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// LoadScenarioFile reads a user-supplied scenario definition from a YAML
// file. The file must at minimum define a mix; name defaults to the file
// basename without extension.
func LoadScenarioFile(path string) (scenario.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("reading scenario file %s: %w", path, err)
	}

	var s scenario.Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return scenario.Scenario{}, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if s.Title == "" {
		s.Title = "User scenario " + s.Name
	}

	if err := s.Mix.Validate(); err != nil {
		return scenario.Scenario{}, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return s, nil
}
