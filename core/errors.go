package core

import (
	"errors"
	"fmt"
)

// MalformedPathError reports a raw path string that could not be segmented
// into nodes. It always carries the offending input.
type MalformedPathError struct {
	Path    string
	Message string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q: %s", e.Path, e.Message)
}

// InvalidArgumentError reports a caller-supplied value that violates a path
// invariant, e.g. an empty node slice.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// InvalidStateError reports an accessor invoked before its prerequisite
// state was established, e.g. reading an alias that was never set.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Message)
}

// IsMalformedPathError checks if an error is a MalformedPathError.
func IsMalformedPathError(err error) bool {
	var malformedErr *MalformedPathError
	// Use errors.As to check the whole chain, not just the outermost error.
	return errors.As(err, &malformedErr)
}

// IsInvalidArgumentError checks if an error is an InvalidArgumentError.
func IsInvalidArgumentError(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// IsInvalidStateError checks if an error is an InvalidStateError.
func IsInvalidStateError(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}
