package analyzer

import "fmt"

// ExitError is a failure that must terminate the process with a specific
// exit code: 2 for usage and parse errors, or the external tool's own code
// when it exited abnormally.
type ExitError struct {
	Code    int
	Message string
	Err     error
	// Diagnostics carries per-tool stderr captured before the failure, so
	// the caller can surface it alongside the message.
	Diagnostics map[string]string
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// Usagef builds an exit-code-2 error for bad input (path, mode, flags).
func Usagef(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}
