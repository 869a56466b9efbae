package analyzer

import (
	"sort"
	"strings"
)

// noisePrefixes match (lowercased) header and hint lines the pip-check-reqs
// tools interleave with their findings.
var noisePrefixes = []string{
	"examining ",
	"missing requirements",
	"unused requirements",
	"extra requirements",
	"configuration",
	"results",
	"to fix",
	"hint:",
	"warning",
}

// parsePipCheckOutput extracts package names from pip-check-reqs human
// output and returns them deduplicated and sorted. The tools have no stable
// machine format, so extraction is heuristic: any line we cannot confidently
// read as a package name is dropped rather than misreported as a finding.
func parsePipCheckOutput(stdout string) []string {
	seen := make(map[string]struct{})

	for _, line := range strings.Split(stdout, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		lowered := strings.ToLower(clean)
		if hasAnyPrefix(lowered, noisePrefixes) {
			continue
		}
		if strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "=") || strings.HasPrefix(clean, "---") {
			continue
		}
		// Log timestamps and counters ("12:04:01 ...", "3 packages: ...").
		if clean[0] >= '0' && clean[0] <= '9' && strings.Contains(clean, ":") {
			continue
		}

		if strings.HasPrefix(clean, "- ") || strings.HasPrefix(clean, "* ") {
			clean = clean[2:]
		}
		fields := strings.Fields(clean)
		if len(fields) == 0 {
			continue
		}
		candidate := strings.Trim(fields[0], ",")
		if candidate == "" || !validPackageName(candidate) {
			continue
		}
		seen[candidate] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// validPackageName accepts PEP 503 style names: alphanumerics plus
// hyphen, underscore and dot.
func validPackageName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
