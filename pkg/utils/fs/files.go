package fs

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

// Mode is the kind of access CheckFile verifies.
type Mode int

const (
	// Read checks that the file can be opened for reading.
	Read Mode = iota
	// Write checks that the file can be opened for writing.
	Write
)

func (m Mode) String() string {
	if m == Write {
		return "write"
	}
	return "read"
}

// FaultError is returned by CheckFile when the check itself failed,
// as opposed to the file simply being absent.
type FaultError struct {
	Path string
	Err  error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("cannot check %q: %v", e.Path, e.Err)
}

// Cause returns the underlying I/O error.
func (e *FaultError) Cause() error { return e.Err }

// Unwrap returns the underlying I/O error.
func (e *FaultError) Unwrap() error { return e.Err }

type causer interface {
	Cause() error
}

// IsFault returns true if err or any error in its cause chain is a FaultError.
func IsFault(err error) bool {
	for err != nil {
		if _, ok := err.(*FaultError); ok {
			return true
		}
		cause, ok := err.(causer)
		if !ok {
			return false
		}
		err = cause.Cause()
	}
	return false
}

// CheckFile reports whether path is a regular file accessible in given mode.
// A missing file is not an error: ok is false and message says why.
// Any other failure (permission denied, malformed path) is returned as *FaultError.
func CheckFile(path string, mode Mode) (ok bool, message string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if isMissing(err) {
			return false, fmt.Sprintf("%s does not exist", path), nil
		}
		return false, "", &FaultError{Path: path, Err: err}
	}

	if info.IsDir() {
		return false, fmt.Sprintf("%s is a directory", path), nil
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Sprintf("%s is not a regular file", path), nil
	}

	flag := os.O_RDONLY
	if mode == Write {
		flag = os.O_WRONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return false, "", &FaultError{Path: path, Err: err}
	}
	f.Close()

	return true, "", nil
}

// isMissing treats a path through a regular file (ENOTDIR) like a missing file.
func isMissing(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err == syscall.ENOTDIR
	}
	return false
}

// ReadTail returns last lineCount lines of given file.
func ReadTail(filePath string, lineCount int) (tail string, err error) {
	output, err := exec.Command("tail", "-n", fmt.Sprintf("%d", lineCount), filePath).CombinedOutput()

	if err != nil {
		return "", errors.Wrapf(err, "could not read tail of %q", filePath)
	}

	return string(output), nil
}
