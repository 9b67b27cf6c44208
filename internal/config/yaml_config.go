package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResponsesConfig represents the structure of the optional responses YAML file.
// Long canned replies are easier to maintain in YAML than in env vars.
type ResponsesConfig struct {
	Base     []ResponseEntry            `yaml:"base"`
	Overlays map[string][]ResponseEntry `yaml:"overlays"`
}

// ResponseEntry is one keyword → reply pair. Order in the file is significant.
type ResponseEntry struct {
	Keyword  string `yaml:"keyword"`
	Response string `yaml:"response"`
}

// LoadResponsesConfig loads the responses file at path.
// Returns nil without error if no path is configured.
func LoadResponsesConfig(path string) (*ResponsesConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file: %w", err)
	}

	var cfg ResponsesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse responses file %s: %w", path, err)
	}

	return &cfg, nil
}

// Overlay returns the overlay entries for a locale (case-insensitive).
func (c *ResponsesConfig) Overlay(locale string) ([]ResponseEntry, bool) {
	if c == nil {
		return nil, false
	}
	for name, entries := range c.Overlays {
		if strings.EqualFold(name, locale) {
			return entries, true
		}
	}
	return nil, false
}
