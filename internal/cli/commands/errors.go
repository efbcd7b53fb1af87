package commands

import (
	"errors"
	"fmt"
)

// ErrViolationsFound is returned by the check command when error-severity
// violations (or warnings beyond --max-warnings) were reported. It marks
// the exit-1 path: findings, not a tool failure.
var ErrViolationsFound = errors.New("violations found")

// IsViolationsFound reports whether err is the check command's
// violations-found result.
func IsViolationsFound(err error) bool {
	return errors.Is(err, ErrViolationsFound)
}

// InputError reports a file that could not be read. Undecodable content is
// reported separately as *source.InvalidEncodingError; both map to exit
// code 2.
type InputError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}
