package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// deptryReport mirrors the shape of `deptry --json` output: two arrays of
// violation entries keyed by category.
type deptryReport struct {
	Missing []deptryEntry `json:"missing"`
	Unused  []deptryEntry `json:"unused"`
}

// deptryEntry extracts a module name from one violation entry. Entries are
// usually objects carrying a "module" field; older versions used "name", and
// anything else falls back to the entry's raw JSON text.
type deptryEntry struct {
	name string
}

func (e *deptryEntry) UnmarshalJSON(data []byte) error {
	var obj struct {
		Module string `json:"module"`
		Name   string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		switch {
		case obj.Module != "":
			e.name = obj.Module
			return nil
		case obj.Name != "":
			e.name = obj.Name
			return nil
		}
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.name = s
		return nil
	}
	e.name = strings.TrimSpace(string(data))
	return nil
}

// parseDeptryReport converts raw deptry stdout into missing/unused lists.
// Empty or whitespace-only output means a clean run. Output that is present
// but not valid JSON is an error; the caller treats it as fatal.
func parseDeptryReport(stdout string) (missing, unused []string, err error) {
	if strings.TrimSpace(stdout) == "" {
		return nil, nil, nil
	}

	var rep deptryReport
	if err := json.Unmarshal([]byte(stdout), &rep); err != nil {
		return nil, nil, fmt.Errorf("parsing deptry JSON: %w", err)
	}

	for _, entry := range rep.Missing {
		missing = append(missing, entry.name)
	}
	for _, entry := range rep.Unused {
		unused = append(unused, entry.name)
	}
	return missing, unused, nil
}
