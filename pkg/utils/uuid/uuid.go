// Package uuid generates identifiers tagging log entries of a single diagnostics run.
package uuid

import (
	"github.com/google/uuid"
)

// New returns new random (version 4) uuid as string in XXXXXXXX-XXXX-4XXX-... format.
func New() string {
	return uuid.NewString()
}
