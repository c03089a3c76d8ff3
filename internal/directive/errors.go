package directive

import (
	"errors"
	"fmt"
)

// ErrNoOptions reports that an insertion carried no assignments at all,
// neither inline nor as appendices.
var ErrNoOptions = errors.New("no options found")

// ParseError is a malformed assignment:
// a missing separator or a bad integer value.
type ParseError struct {
	// Option is the lower-cased option name.
	// It is empty if the assignment could not be split.
	Option string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("malformed assignment %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for %q: %s", e.Value, e.Option, e.Reason)
}

// UnknownOptionError is an assignment to an option
// that doesn't exist.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("invalid option name: '%s'", e.Name)
}
