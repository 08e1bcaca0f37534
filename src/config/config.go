// Package config holds the viewer configuration: the two trace file paths and
// the rendering options that the original diagnostic kept as edit-time
// constants. Values come from defaults, an optional YAML file, and CLI flag
// overrides, in that order.
package config

import "fmt"

// Config is the full configuration surface of the viewer.
//
// ConnectLines and ShowBoth select the series style: ConnectLines draws
// connected lines without markers and takes precedence; otherwise ShowBoth
// draws lines with a marker at each sample; with both false only markers are
// drawn.
type Config struct {
	ClientFile   string `yaml:"client_file"`
	ServerFile   string `yaml:"server_file"`
	ConnectLines bool   `yaml:"connect_lines"`
	ShowBoth     bool   `yaml:"show_both"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration matching the original diagnostic script:
// markers plus lines, the well-known trace file names, a 1400x1000 window.
func Default() *Config {
	return &Config{
		ClientFile:   "steve-client.csv",
		ServerFile:   "steve-server.csv",
		ConnectLines: false,
		ShowBoth:     true,
		Width:        1400,
		Height:       1000,
		LogLevel:     "info",
	}
}

var validLogLevels = map[string]bool{
	"": true, "debug": true, "info": true, "warn": true, "error": true,
}

func (c *Config) Validate() error {
	if c.ClientFile == "" {
		return fmt.Errorf("client_file is required")
	}
	if c.ServerFile == "" {
		return fmt.Errorf("server_file is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
