package cli

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucasnoah/pydepcheck/internal/analyzer"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = newRootCmd(&analyzer.ExecRunner{})

func newRootCmd(runner analyzer.CommandRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pydepcheck [path]",
		Short: "pydepcheck — report missing and unused Python dependencies",
		Long: `pydepcheck wraps two Python dependency analyzers — deptry and the
pip-check-reqs pair (pip-missing-reqs / pip-extra-reqs) — runs one of them
against a project directory, and normalizes their reports into missing and
unused dependency lists.

Exit codes: 0 clean, 1 dependency issues found, 2 usage or tool failure
(an abnormal tool exit code is propagated as-is).

Inputs may come from flags, GitHub Action environment variables (INPUT_PATH,
INPUT_MODE, INPUT_FAIL_ON_WARN, GITHUB_STEP_SUMMARY), or an optional
.pydepcheck.yaml in the target directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, runner)
		},
	}

	cmd.Flags().String("mode", "", "analyzer to run: deptry or pip-check-reqs")
	cmd.Flags().Bool("fail-on-warn", false, "treat unused dependencies as failures")
	cmd.Flags().String("summary-file", "", "markdown summary file to append to (default: $GITHUB_STEP_SUMMARY)")
	cmd.Flags().Duration("timeout", 0, "per-tool execution timeout, 0 disables")
	cmd.Flags().String("config", "", "config file path (default: .pydepcheck.yaml in the target directory)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(versionCmd)
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
