package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is ambient tooling only: theme and debug logging. No core
// behavior depends on it and nothing is ever written back.
type Config struct {
	Theme string    `yaml:"theme"`
	Log   LogConfig `yaml:"log"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Theme: "mocha",
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads ~/.config/branchout/config.yaml, returning defaults when
// the file does not exist.
func Load() (Config, error) {
	return LoadFrom(configPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "branchout", "config.yaml")
}
