package plot

import (
	"github.com/briandobbins/CESM-postprocessing/pkg/utils/fs"
	log "github.com/sirupsen/logrus"
)

// Checker tells whether an artifact file was produced.
// A missing file is (false, nil); err is reserved for faults of the check itself.
type Checker interface {
	Check(path string) (bool, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(path string) (bool, error)

// Check calls f(path).
func (f CheckerFunc) Check(path string) (bool, error) {
	return f(path)
}

// FileChecker checks that artifacts are readable files.
type FileChecker struct{}

// Check implements Checker.
func (FileChecker) Check(path string) (bool, error) {
	ok, message, err := fs.CheckFile(path, fs.Read)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Debugf("artifact check: %s", message)
	}
	return ok, nil
}
