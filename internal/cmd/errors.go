package cmd

import (
	"errors"
	"fmt"
)

// SilentExitError makes the command exit with Code without printing an
// error. check uses it once diagnostics have already been printed.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// NewSilentExit creates a SilentExitError with the given exit code.
func NewSilentExit(code int) *SilentExitError {
	return &SilentExitError{Code: code}
}

// IsSilentExit reports the exit code carried by a (possibly wrapped)
// SilentExitError.
func IsSilentExit(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var se *SilentExitError
	if errors.As(err, &se) {
		return se.Code, true
	}

	return 0, false
}
