package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucasnoah/pydepcheck/internal/analyzer"
	"github.com/lucasnoah/pydepcheck/internal/config"
	"github.com/lucasnoah/pydepcheck/internal/report"
)

// run drives the full pipeline: resolve inputs, validate the path, invoke
// the selected analyzer, render the report, and map findings to an exit
// code. All failures come back as *analyzer.ExitError so main can exit with
// the right code.
func run(cmd *cobra.Command, args []string, runner analyzer.CommandRunner) error {
	opts, err := config.Resolve(collectFlags(cmd, args))
	if err != nil {
		return analyzer.Usagef("%v", err)
	}

	logger.WithFields(logger.Fields{
		"path":         opts.Path,
		"mode":         opts.Mode,
		"fail_on_warn": opts.FailOnWarn,
	}).Info("dependency check started")

	dir, err := resolveProjectPath(opts.Path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var rep *analyzer.Report
	switch opts.Mode {
	case config.ModeDeptry:
		rep, err = analyzer.NewDeptry(runner, opts.Tools.Deptry).Scan(ctx, dir)
	case config.ModePipCheckReqs:
		rep, err = analyzer.NewPipCheckReqs(runner, analyzer.PipCheckReqsConfig{
			MissingTool: opts.Tools.Missing,
			ExtraTool:   opts.Tools.Extra,
			Manifests:   opts.Manifests,
		}).Scan(ctx, dir)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, rep); err != nil {
		return err
	}
	if err := report.WriteSummary(opts.SummaryPath, rep, opts.Mode); err != nil {
		return err
	}
	report.RenderDiagnostics(out, rep.Diagnostics)

	outcome := analyzer.Decide(rep, opts.FailOnWarn)
	switch outcome.Status {
	case analyzer.StatusFail:
		return &analyzer.ExitError{Code: outcome.Code, Message: "dependency issues detected"}
	case analyzer.StatusWarn:
		logger.Warn("unused dependencies detected (warnings only)")
	}

	logger.Info("all checks completed successfully")
	return nil
}

func collectFlags(cmd *cobra.Command, args []string) config.FlagValues {
	flags := config.FlagValues{}

	if len(args) > 0 {
		flags.Path = args[0]
		flags.PathSet = true
	}
	flags.Mode, _ = cmd.Flags().GetString("mode")
	flags.ModeSet = cmd.Flags().Changed("mode")
	flags.FailOnWarn, _ = cmd.Flags().GetBool("fail-on-warn")
	flags.FailOnWarnSet = cmd.Flags().Changed("fail-on-warn")
	flags.SummaryPath, _ = cmd.Flags().GetString("summary-file")
	flags.SummarySet = cmd.Flags().Changed("summary-file")
	flags.Timeout, _ = cmd.Flags().GetDuration("timeout")
	flags.TimeoutSet = cmd.Flags().Changed("timeout")
	flags.ConfigPath, _ = cmd.Flags().GetString("config")

	return flags
}

// resolveProjectPath expands, absolutizes and validates the target path.
// Validation failures are usage errors (exit 2) raised before any external
// tool runs.
func resolveProjectPath(raw string) (string, error) {
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			raw = filepath.Join(home, strings.TrimPrefix(raw, "~"))
		}
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", &analyzer.ExitError{
			Code:    2,
			Message: fmt.Sprintf("path %q cannot be resolved", raw),
			Err:     err,
		}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", analyzer.Usagef("path %q does not exist", abs)
	}
	if !info.IsDir() {
		return "", analyzer.Usagef("path %q is not a directory", abs)
	}
	return abs, nil
}
