package diagnostics

import (
	"fmt"
	"os"
)

// FatalError marks an unrecoverable condition: a malformed builtin
// manifest, an unreadable user-supplied manifest, or an internal
// invariant violation. These never go through Log — per the source
// model, a fatal condition aborts the process immediately with a
// diagnostic naming the offending input.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

// Fatalf constructs a FatalError from a format string.
func Fatalf(format string, args ...any) *FatalError {
	return &FatalError{Message: fmt.Sprintf(format, args...)}
}

// Abort prints err to stderr and terminates the process. The builtin
// catalog loader calls this on any manifest parse failure, matching the
// source model's "parse failures abort the process with a diagnostic
// naming the manifest and the offending line" rule — the manifest is
// trusted input, so a malformed one is a build-environment bug, not a
// user-facing compilation error.
func Abort(err *FatalError) {
	_, _ = fmt.Fprintln(os.Stderr, "fatal:", err.Error())
	os.Exit(1)
}
