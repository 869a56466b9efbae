package analyzer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Report holds the normalized output of one analyzer run: the two finding
// lists plus any per-tool text retained for display. It is not mutated after
// a Scan returns it.
type Report struct {
	// Missing lists modules imported by project code but absent from the
	// dependency manifest.
	Missing []string
	// Unused lists modules declared in the manifest but never imported.
	Unused []string
	// Diagnostics maps tool name to stderr captured during a normal run.
	// Displayed after the report; never affects the exit code.
	Diagnostics map[string]string
	// Output maps tool name to the raw stdout worth echoing back to the
	// user (the pip-check-reqs tools print a human report we preserve).
	Output map[string]string
}

// Clean reports whether the run produced no findings at all.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unused) == 0
}

// CommandRunner abstracts external tool execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, exitCode int, err error)
}

// ExecRunner implements CommandRunner by invoking the tool directly.
type ExecRunner struct{}

func (e *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return stdoutBuf.String(), stderrBuf.String(), -1, fmt.Errorf("exec %s: %w", name, err)
		}
	}
	return stdoutBuf.String(), stderrBuf.String(), exitCode, nil
}

// normalExit reports whether code is one of the two codes the wrapped tools
// use for ordinary completion: 0 (no findings) or 1 (findings present).
func normalExit(code int) bool {
	return code == 0 || code == 1
}

// exitCodeOr returns code unless it cannot signal failure (zero or a
// negative sentinel), in which case fallback is used.
func exitCodeOr(code, fallback int) int {
	if code <= 0 {
		return fallback
	}
	return code
}
