package plot

import "fmt"

// MalformedSpecError is returned for a structurally inconsistent PlotSpec.
// It is a programmer error and is never retried.
type MalformedSpecError struct {
	Spec   string
	Reason string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed plot spec %q: %s", e.Spec, e.Reason)
}

// CheckerFaultError is returned when an artifact could not be checked at all.
type CheckerFaultError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *CheckerFaultError) Error() string {
	return fmt.Sprintf("checking artifact %q at %q failed: %v", e.Artifact, e.Path, e.Err)
}

// Cause returns the fault reported by the checker.
func (e *CheckerFaultError) Cause() error { return e.Err }

// Unwrap returns the fault reported by the checker.
func (e *CheckerFaultError) Unwrap() error { return e.Err }
