package commands

import (
	"errors"
	"fmt"

	"github.com/michal-dobrogost/csp-json/urbcsp"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitInvalidParams = 2
)

// usageError marks a malformed command line.
type usageError struct{ msg string }

func (e *usageError) Error() string { return "usage: " + e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, urbcsp.ErrInvalidParams):
		return ExitInvalidParams
	default:
		return ExitUsage
	}
}
