// Package report renders analysis results for humans: a console status
// table, raw tool output sections, and an optional markdown build summary.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/lucasnoah/pydepcheck/internal/analyzer"
)

// Render writes the raw tool output sections (when any were retained)
// followed by the dependency status table.
func Render(w io.Writer, rep *analyzer.Report) error {
	for _, tool := range sortedKeys(rep.Output) {
		fmt.Fprintf(w, "── %s ──\n%s\n\n", tool, rep.Output[tool])
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tPACKAGES")
	if len(rep.Missing) > 0 {
		fmt.Fprintf(tw, "missing\t%s\n", joinSorted(rep.Missing))
	}
	if len(rep.Unused) > 0 {
		fmt.Fprintf(tw, "unused\t%s\n", joinSorted(rep.Unused))
	}
	if rep.Clean() {
		fmt.Fprintln(tw, "ok\tno issues detected")
	}
	return tw.Flush()
}

// RenderDiagnostics writes any retained tool stderr after the table. It is
// informational only; the exit code never depends on it.
func RenderDiagnostics(w io.Writer, diagnostics map[string]string) {
	for _, tool := range sortedKeys(diagnostics) {
		fmt.Fprintf(w, "\n── %s stderr ──\n%s\n", tool, strings.TrimRight(diagnostics[tool], "\n"))
	}
}

func joinSorted(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
