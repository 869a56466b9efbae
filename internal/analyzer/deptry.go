package analyzer

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
)

// Deptry wraps the deptry static import analyzer, invoked in JSON mode.
type Deptry struct {
	cmd  CommandRunner
	tool string
}

// NewDeptry builds a Deptry analyzer. An empty tool name means the default
// "deptry" executable on PATH.
func NewDeptry(cmd CommandRunner, tool string) *Deptry {
	if tool == "" {
		tool = "deptry"
	}
	return &Deptry{cmd: cmd, tool: tool}
}

// Scan runs deptry against dir and normalizes its JSON report. Exit codes 0
// (clean) and 1 (findings present) are both ordinary completions; anything
// else is an invocation failure returned as *ExitError carrying the tool's
// own code, or 2 when that code cannot signal failure.
func (d *Deptry) Scan(ctx context.Context, dir string) (*Report, error) {
	logger.WithField("path", dir).Info("running deptry analysis")

	stdout, stderr, code, err := d.cmd.Run(ctx, dir, d.tool, dir, "--json")
	if err != nil {
		return nil, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("%s failed to execute", d.tool),
			Err:     err,
		}
	}
	if !normalExit(code) {
		exit := &ExitError{
			Code:    exitCodeOr(code, 2),
			Message: fmt.Sprintf("%s exited with unexpected status %d", d.tool, code),
		}
		if stderr != "" {
			exit.Diagnostics = map[string]string{d.tool: stderr}
		}
		return nil, exit
	}

	missing, unused, perr := parseDeptryReport(stdout)
	if perr != nil {
		// Malformed structured output is fatal; surface the raw text so
		// the user can see what the tool actually printed.
		return nil, &ExitError{
			Code:        2,
			Message:     "unable to parse deptry output as JSON",
			Err:         perr,
			Diagnostics: map[string]string{d.tool: stdout},
		}
	}

	logger.WithFields(logger.Fields{
		"missing": len(missing),
		"unused":  len(unused),
	}).Debug("deptry analysis complete")

	return &Report{Missing: missing, Unused: unused}, nil
}
