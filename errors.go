package slicer

import "fmt"

// ValidationError reports a malformed Options value. It is the only
// user-visible error the core can return: everything else recoverable
// (degenerate geometry, unclosable rings, empty strides) is absorbed
// silently per design, and everything else is a programming bug that is
// allowed to panic past Run rather than being reported here.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("slicer: invalid %s: %s", e.Field, e.Reason)
}

// assertf panics with a *ValidationError built from field and the
// formatted reason. Run recovers exactly this type and turns it into a
// returned error; any other panic indicates an internal bug and is left
// to propagate.
func assertf(field string, format string, args ...any) {
	panic(&ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
}
