package deterministic

import "errors"

// ErrInvalidArgument is matched by every input validation error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which argument was rejected and why.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "deterministic: invalid " + e.Arg + ": " + e.Reason
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArg(arg, reason string) error {
	return &ArgumentError{Arg: arg, Reason: reason}
}
