package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/lucasnoah/pydepcheck/internal/analyzer"
	"github.com/lucasnoah/pydepcheck/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr *analyzer.ExitError
		if errors.As(err, &exitErr) {
			printDiagnostics(exitErr.Diagnostics)
			os.Exit(exitErr.Code)
		}
		os.Exit(2)
	}
}

func printDiagnostics(diagnostics map[string]string) {
	tools := make([]string, 0, len(diagnostics))
	for tool := range diagnostics {
		tools = append(tools, tool)
	}
	sort.Strings(tools)
	for _, tool := range tools {
		fmt.Fprintf(os.Stderr, "── %s ──\n%s\n", tool, diagnostics[tool])
	}
}
