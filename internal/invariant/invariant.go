// Package invariant enforces internal consistency conditions that
// indicate a solver bug, never a user error (spec.md §7). A failure here
// panics; nothing in the solver recovers from it.
package invariant

import "fmt"

// Check panics with a formatted message if cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
