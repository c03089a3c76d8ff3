// Package must asserts program invariants.
// A violated invariant is a bug, so these functions panic.
package must

import "fmt"

// NotErrorf panics if err is not nil.
//
// The panic value is an error wrapping err
// and prefixed with the formatted message.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Errorf("unexpected error: %v: %w", fmt.Sprintf(format, args...), err))
	}
}
