package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasnoah/pydepcheck/internal/analyzer"
)

// WriteSummary appends a short markdown block describing the run to the
// build summary file (the GITHUB_STEP_SUMMARY contract: the file may already
// hold other steps' output, so we only ever append). An empty path disables
// the summary.
func WriteSummary(path string, rep *analyzer.Report, mode string) error {
	if path == "" {
		return nil
	}

	lines := []string{
		fmt.Sprintf("## Python Dependency Checker (%s)", mode),
		"",
	}
	if len(rep.Missing) > 0 {
		lines = append(lines, fmt.Sprintf("- **Missing dependencies**: %s", joinSorted(rep.Missing)))
	}
	if len(rep.Unused) > 0 {
		lines = append(lines, fmt.Sprintf("- **Unused dependencies**: %s", joinSorted(rep.Unused)))
	}
	if rep.Clean() {
		lines = append(lines, "- All dependencies look good!")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening summary file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
