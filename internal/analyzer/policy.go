package analyzer

// Status classifies the overall result of a run.
type Status int

const (
	// StatusOK means no findings at all.
	StatusOK Status = iota
	// StatusWarn means unused dependencies were found but are not escalated.
	StatusWarn
	// StatusFail means the run must exit non-zero.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Outcome is the exit-code decision derived from a report.
type Outcome struct {
	Status Status
	Code   int
}

// Decide applies the exit-code policy, identical for both analyzers:
// missing dependencies always fail; unused dependencies fail only when
// failOnWarn escalates them, and otherwise warn without failing.
func Decide(rep *Report, failOnWarn bool) Outcome {
	hasMissing := len(rep.Missing) > 0
	hasUnused := len(rep.Unused) > 0

	switch {
	case hasMissing || (hasUnused && failOnWarn):
		return Outcome{Status: StatusFail, Code: 1}
	case hasUnused:
		return Outcome{Status: StatusWarn, Code: 0}
	default:
		return Outcome{Status: StatusOK, Code: 0}
	}
}
