package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Port is the serial device to read, e.g. COM3 or /dev/ttyACM0. Empty
	// means prompt interactively from the enumerated ports.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`

	// BaseReadings is how many initial readings are averaged into the
	// ground reference.
	BaseReadings int `yaml:"base_readings"`

	// LogDir receives a per-run copy of all console output.
	LogDir string `yaml:"log_dir"`
}

func Default() Config {
	return Config{
		Baud:         9600,
		BaseReadings: 50,
		LogDir:       "logs",
	}
}

// Load reads a YAML config from path, applying defaults for absent fields.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Called by Load and again after flag
// overrides are applied.
func (c Config) Validate() error {
	if c.Baud <= 0 {
		return fmt.Errorf("baud must be > 0")
	}
	if c.BaseReadings <= 0 {
		return fmt.Errorf("base_readings must be > 0")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log_dir is required")
	}
	return nil
}
