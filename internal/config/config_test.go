package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv neutralizes any ambient action environment for tests that rely
// on the built-in defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"INPUT_PATH", "INPUT_MODE", "INPUT_FAIL_ON_WARN", "INPUT_FAIL-ON-WARN", "GITHUB_STEP_SUMMARY"} {
		t.Setenv(key, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	opts, err := Resolve(FlagValues{Path: t.TempDir(), PathSet: true})
	require.NoError(t, err)

	assert.Equal(t, ModeDeptry, opts.Mode)
	assert.False(t, opts.FailOnWarn)
	assert.Empty(t, opts.SummaryPath)
	assert.Zero(t, opts.Timeout)
}

func TestResolve_EnvironmentInputs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INPUT_PATH", dir)
	t.Setenv("INPUT_MODE", "PIP-CHECK-REQS")
	t.Setenv("INPUT_FAIL_ON_WARN", " TRUE ")
	t.Setenv("GITHUB_STEP_SUMMARY", "/tmp/summary.md")

	opts, err := Resolve(FlagValues{})
	require.NoError(t, err)

	assert.Equal(t, dir, opts.Path)
	assert.Equal(t, ModePipCheckReqs, opts.Mode)
	assert.True(t, opts.FailOnWarn)
	assert.Equal(t, "/tmp/summary.md", opts.SummaryPath)
}

func TestResolve_HyphenatedFailOnWarnEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_FAIL-ON-WARN", "true")

	opts, err := Resolve(FlagValues{Path: t.TempDir(), PathSet: true})
	require.NoError(t, err)
	assert.True(t, opts.FailOnWarn)
}

func TestResolve_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("INPUT_MODE", "pip-check-reqs")
	t.Setenv("INPUT_FAIL_ON_WARN", "true")

	opts, err := Resolve(FlagValues{
		Path:          t.TempDir(),
		PathSet:       true,
		Mode:          "deptry",
		ModeSet:       true,
		FailOnWarn:    false,
		FailOnWarnSet: true,
	})
	require.NoError(t, err)

	assert.Equal(t, ModeDeptry, opts.Mode)
	assert.False(t, opts.FailOnWarn)
}

func TestResolve_UnsupportedMode(t *testing.T) {
	_, err := Resolve(FlagValues{Mode: "poetry", ModeSet: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported mode "poetry"`)
}

func TestResolve_ModeNormalized(t *testing.T) {
	opts, err := Resolve(FlagValues{
		Path:    t.TempDir(),
		PathSet: true,
		Mode:    "  Deptry ",
		ModeSet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, ModeDeptry, opts.Mode)
}

func TestResolve_ConfigFileInTargetDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `mode: pip-check-reqs
fail_on_warn: true
timeout: 90s
manifests:
  - reqs.txt
tools:
  deptry: /opt/venv/bin/deptry
  missing: my-missing-reqs
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o644))

	opts, err := Resolve(FlagValues{Path: dir, PathSet: true})
	require.NoError(t, err)

	assert.Equal(t, ModePipCheckReqs, opts.Mode)
	assert.True(t, opts.FailOnWarn)
	assert.Equal(t, 90*time.Second, opts.Timeout)
	assert.Equal(t, []string{"reqs.txt"}, opts.Manifests)
	assert.Equal(t, "/opt/venv/bin/deptry", opts.Tools.Deptry)
	assert.Equal(t, "my-missing-reqs", opts.Tools.Missing)
}

func TestResolve_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, DefaultFileName),
		[]byte("mode: pip-check-reqs\n"), 0o644))
	t.Setenv("INPUT_MODE", "deptry")

	opts, err := Resolve(FlagValues{Path: dir, PathSet: true})
	require.NoError(t, err)
	assert.Equal(t, ModeDeptry, opts.Mode)
}

func TestResolve_ExplicitConfigFileMustExist(t *testing.T) {
	_, err := Resolve(FlagValues{
		Path:       t.TempDir(),
		PathSet:    true,
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
