package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "predview.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestDefaultMatchesOriginalScript(t *testing.T) {
	c := Default()
	if c.ConnectLines {
		t.Error("connect_lines should default to false")
	}
	if !c.ShowBoth {
		t.Error("show_both should default to true")
	}
	if c.ClientFile != "steve-client.csv" || c.ServerFile != "steve-server.csv" {
		t.Errorf("unexpected default files: %q %q", c.ClientFile, c.ServerFile)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, "client_file: a.csv\nconnect_lines: true\nwidth: 900\n")
	c, err := NewLoader(p).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ClientFile != "a.csv" {
		t.Errorf("client_file: got %q", c.ClientFile)
	}
	if !c.ConnectLines {
		t.Error("connect_lines override lost")
	}
	if c.Width != 900 {
		t.Errorf("width: got %d", c.Width)
	}
	// untouched keys keep defaults
	if c.ServerFile != "steve-server.csv" || !c.ShowBoth {
		t.Errorf("defaults clobbered: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	if err == nil {
		t.Fatal("expected read error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	p := writeConfig(t, "client_file: [unclosed\n")
	if _, err := NewLoader(p).Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.ClientFile = "" },
		func(c *Config) { c.ServerFile = "" },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.LogLevel = "loud" },
	}
	for i, mutate := range cases {
		c := Default()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
