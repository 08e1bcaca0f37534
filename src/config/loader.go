package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is probed when no -config flag is given.
const DefaultConfigPath = "predview.yaml"

// Loader reads and validates a YAML config file. Keys absent from the file
// keep their Default() values.
type Loader struct {
	configPath string
}

func NewLoader(configPath string) *Loader {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return &Loader{configPath: configPath}
}

func (l *Loader) Load() (*Config, error) {
	raw, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, NewReadError(l.configPath, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, NewParseError(l.configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
