// Package config reads the optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-plot/selection"
	"github.com/andareed/siftly-plot/timewindow"
)

// Config mirrors the YAML file. Every field is optional.
//
//	delimiter: ";"
//	time_column: ""        # empty: first column containing "time", else the second column
//	timezone: Local
//	refresh_interval: 1s
//	panels: 1
//	window:
//	  full: true
//	  duration: 5
//	  unit: minutes
type Config struct {
	Delimiter       string        `yaml:"delimiter"`
	TimeColumn      string        `yaml:"time_column"`
	Timezone        string        `yaml:"timezone"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Panels          int           `yaml:"panels"`
	Window          Window        `yaml:"window"`
}

type Window struct {
	Full     bool   `yaml:"full"`
	Duration int    `yaml:"duration"`
	Unit     string `yaml:"unit"`
}

func Default() Config {
	return Config{
		Delimiter:       ";",
		Timezone:        "Local",
		RefreshInterval: time.Second,
		Panels:          1,
		Window: Window{
			Full:     true,
			Duration: 5,
			Unit:     "minutes",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(blob, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config YAML %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.Panels < selection.MinPanels || c.Panels > selection.MaxPanels {
		return fmt.Errorf("panels must be between %d and %d, got %d", selection.MinPanels, selection.MaxPanels, c.Panels)
	}
	if c.Window.Duration < 0 {
		return fmt.Errorf("window.duration must not be negative, got %d", c.Window.Duration)
	}
	if _, err := timewindow.ParseUnit(c.Window.Unit); err != nil {
		return fmt.Errorf("window.unit: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the configured field separator.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Location resolves the timezone used for zone-less timestamps.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", name, err)
	}
	return loc, nil
}

// WindowUnit returns the parsed default unit, minutes when invalid.
func (c Config) WindowUnit() timewindow.Unit {
	u, _ := timewindow.ParseUnit(c.Window.Unit)
	return u
}
