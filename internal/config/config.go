package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Supported analyzer modes.
const (
	ModeDeptry       = "deptry"
	ModePipCheckReqs = "pip-check-reqs"
)

// Environment variables honored for GitHub-Action compatibility.
const (
	envPath        = "INPUT_PATH"
	envMode        = "INPUT_MODE"
	envFailOnWarn  = "INPUT_FAIL_ON_WARN"
	envFailOnWarn2 = "INPUT_FAIL-ON-WARN"
	envSummary     = "GITHUB_STEP_SUMMARY"
)

// Tools names the external executables; empty fields mean the standard
// names on PATH.
type Tools struct {
	Deptry  string `yaml:"deptry"`
	Missing string `yaml:"missing"`
	Extra   string `yaml:"extra"`
}

// Options is the fully resolved run configuration.
type Options struct {
	Path        string
	Mode        string
	FailOnWarn  bool
	SummaryPath string
	Timeout     time.Duration
	Manifests   []string
	Tools       Tools
}

// FlagValues carries the raw cobra flag inputs into Resolve. The *Set fields
// record whether a flag was given explicitly, so unset flags defer to the
// environment and the config file.
type FlagValues struct {
	Path        string
	Mode        string
	FailOnWarn  bool
	SummaryPath string
	Timeout     time.Duration
	ConfigPath  string

	PathSet       bool
	ModeSet       bool
	FailOnWarnSet bool
	SummarySet    bool
	TimeoutSet    bool
}

// Resolve merges flag, environment, config-file and default values into the
// final Options. Precedence: flag > environment > config file > default.
// An unsupported mode is a usage error.
func Resolve(flags FlagValues) (*Options, error) {
	opts := &Options{
		Path: ".",
		Mode: ModeDeptry,
	}

	// The target path must be known before the config file can be searched
	// for in it.
	if env := os.Getenv(envPath); env != "" {
		opts.Path = env
	}
	if flags.PathSet {
		opts.Path = flags.Path
	}

	file, err := loadFile(flags.ConfigPath, opts.Path)
	if err != nil {
		return nil, err
	}
	applyFile(opts, file)

	if env := os.Getenv(envMode); env != "" {
		opts.Mode = env
	}
	if raw := firstEnv(envFailOnWarn, envFailOnWarn2); raw != "" {
		opts.FailOnWarn = parseBool(raw)
	}
	if env := os.Getenv(envSummary); env != "" {
		opts.SummaryPath = env
	}

	if flags.ModeSet {
		opts.Mode = flags.Mode
	}
	if flags.FailOnWarnSet {
		opts.FailOnWarn = flags.FailOnWarn
	}
	if flags.SummarySet {
		opts.SummaryPath = flags.SummaryPath
	}
	if flags.TimeoutSet {
		opts.Timeout = flags.Timeout
	}

	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if opts.Mode != ModeDeptry && opts.Mode != ModePipCheckReqs {
		return nil, fmt.Errorf("unsupported mode %q: use %q or %q", opts.Mode, ModeDeptry, ModePipCheckReqs)
	}

	return opts, nil
}

// loadFile loads the explicit config file when given, otherwise searches the
// target directory for the default one. A missing default file is not an
// error; a missing explicit file is.
func loadFile(explicit, targetDir string) (*File, error) {
	if explicit != "" {
		return Load(explicit)
	}
	candidate := filepath.Join(targetDir, DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		return &File{}, nil
	}
	return Load(candidate)
}

func applyFile(opts *Options, file *File) {
	if file.Mode != "" {
		opts.Mode = file.Mode
	}
	if file.FailOnWarn != nil {
		opts.FailOnWarn = *file.FailOnWarn
	}
	if file.Timeout != "" {
		// Already validated during Load.
		opts.Timeout, _ = time.ParseDuration(file.Timeout)
	}
	if len(file.Manifests) > 0 {
		opts.Manifests = file.Manifests
	}
	opts.Tools = file.Tools
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// parseBool matches the action contract: only a trimmed, lowercased "true"
// enables the flag.
func parseBool(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "true"
}
