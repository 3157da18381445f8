package errors

import (
	"errors"
	"fmt"
)

// ExitCodeFailure is returned for non-compliant audits and invocation errors.
const ExitCodeFailure = 1

// ErrNonCompliant reports that an audit finished with at least one issue.
var ErrNonCompliant = errors.New("audit finished with blocking issues")

// CommandError represents an error that occurred during command execution, carrying the process exit code.
type CommandError struct {
	ExitCode    int
	CommonError string
	// Reported marks errors whose outcome was already shown to the user,
	// so Execute only maps them to an exit code.
	Reported bool
	err      error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.err
}

// NewCommandError creates a new CommandError instance wrapping err.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		err:         err,
	}
}

// NewNonCompliantError creates the CommandError returned after a failing audit
// whose report was already written.
func NewNonCompliantError(issues int) *CommandError {
	return &CommandError{
		ExitCode:    ExitCodeFailure,
		CommonError: fmt.Sprintf("%s: %d", ErrNonCompliant, issues),
		Reported:    true,
		err:         ErrNonCompliant,
	}
}

// ExitCode maps err to a process exit status: 0 for nil, the carried code
// for a CommandError, and ExitCodeFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitCodeFailure
}

// IsReported reports whether err is a CommandError whose outcome was already
// shown to the user.
func IsReported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Reported
}
