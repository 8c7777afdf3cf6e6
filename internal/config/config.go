// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in threshold defaults (minutes).
const (
	DefaultWarnMinutes int64 = 10
	DefaultCritMinutes int64 = 15
)

// Options are the resolved settings for one plugin run.
type Options struct {
	RepeaterID  uint32
	WarnMinutes int64
	CritMinutes int64
	APIURL      string
	ConfigPath  string

	// Host is accepted and ignored, for compatibility with nagios host checks.
	Host string
}

// File is the optional YAML defaults file.
type File struct {
	Check CheckConfig `yaml:"check"`
}

// ---- CHECK DEFAULTS ----

type CheckConfig struct {
	APIURL          string `yaml:"api_url"`
	WarnMinutes     *int64 `yaml:"warn_minutes"`
	CriticalMinutes *int64 `yaml:"critical_minutes"`
}

// Load reads and decodes a defaults file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &f, nil
}
