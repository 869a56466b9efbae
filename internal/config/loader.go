package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file searched for in the target directory.
const DefaultFileName = ".pydepcheck.yaml"

// File is the on-disk YAML shape. All fields are optional; anything unset
// defers to environment variables, flags, or built-in defaults.
type File struct {
	Mode       string   `yaml:"mode"`
	FailOnWarn *bool    `yaml:"fail_on_warn"`
	Timeout    string   `yaml:"timeout"`
	Manifests  []string `yaml:"manifests"`
	Tools      Tools    `yaml:"tools"`
}

// Load reads and parses a config file from the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if file.Timeout != "" {
		if _, err := time.ParseDuration(file.Timeout); err != nil {
			return nil, fmt.Errorf("invalid timeout %q in %s: %w", file.Timeout, path, err)
		}
	}
	return &file, nil
}
