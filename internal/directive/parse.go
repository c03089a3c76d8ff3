package directive

import (
	"flag"
	"strings"

	"braces.dev/errtrace"
)

// Separator splits the source code from the option section.
const Separator = ":::"

// Split splits an insertion value into the source code
// and the option section at the last Separator.
// ok is false if the value has no option section.
func Split(value string) (code, options string, ok bool) {
	idx := strings.LastIndex(value, Separator)
	if idx < 0 {
		return value, "", false
	}
	return value[:idx], value[idx+len(Separator):], true
}

// Result is the outcome of parsing an insertion.
type Result struct {
	// Code is the source code with the option section removed.
	Code string

	// Options are the defaults with all assignments applied.
	// Only meaningful if Err is nil.
	Options Options

	// Applied counts the assignments that were processed successfully.
	Applied int

	// Err is the first failure, if any.
	// It is a *ParseError or *UnknownOptionError for a bad assignment,
	// or ErrNoOptions if there was nothing to apply.
	Err error
}

// Parse parses an insertion value and its appendices over the defaults.
//
// Inline assignments are applied first, then appendices,
// so an appendix overrides an inline assignment to the same option.
// The first bad assignment aborts the whole insertion.
func Parse(value string, appendices []string, defaults Options) Result {
	code, inline, ok := Split(value)
	res := Result{
		Code:    code,
		Options: defaults.clone(),
	}

	var assignments []string
	if ok {
		assignments = strings.Split(inline, ";")
	}
	assignments = append(assignments, appendices...)

	for _, a := range assignments {
		name, value, err := SplitAssignment(a)
		if err != nil {
			res.Err = err
			return res
		}
		if err := res.Options.Set(name, value); err != nil {
			res.Err = err
			return res
		}
		res.Applied++
	}

	if res.Applied == 0 {
		res.Err = errtrace.Wrap(ErrNoOptions)
	}
	return res
}

// SplitAssignment splits "name=value", or "name:value" if there's no "=".
func SplitAssignment(s string) (name, value string, err error) {
	if name, value, ok := strings.Cut(s, "="); ok {
		return name, value, nil
	}
	if name, value, ok := strings.Cut(s, ":"); ok {
		return name, value, nil
	}
	return "", "", &ParseError{
		Value:  s,
		Reason: "expected name=value or name:value",
	}
}

// Assignment is a single "name=value" pair.
// It can be used as a command line flag.
type Assignment struct {
	Name  string
	Value string
}

var _ flag.Getter = (*Assignment)(nil)

// Get returns the assignment itself.
func (a *Assignment) Get() any { return a }

// String formats the assignment as "name=value".
func (a Assignment) String() string {
	return a.Name + "=" + a.Value
}

// Set parses an assignment and validates it against a scratch Options.
func (a *Assignment) Set(s string) error {
	name, value, err := SplitAssignment(s)
	if err != nil {
		return err
	}

	scratch := Defaults()
	if err := scratch.Set(name, value); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(name)
	a.Value = strings.TrimSpace(value)
	return nil
}
