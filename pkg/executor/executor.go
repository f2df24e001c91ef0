package executor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Executor runs external tools (awk, tail, ncl, convert) on behalf of plots.
// Execute blocks until the tool exits, the command timeout passes or ctx is done.
type Executor interface {
	// Execute runs the command and returns its result.
	// A non-zero exit status is returned as *ExitError together with the Result.
	Execute(ctx context.Context, command Command) (Result, error)
	// Name returns user-friendly name of executor.
	Name() string
}

// Command describes a single external tool invocation.
type Command struct {
	// Path is the program to run, looked up in PATH when it has no slash.
	Path string
	Args []string
	// Env is added on top of the process environment.
	Env map[string]string
	// Dir is the working directory, current directory when empty.
	Dir string
	// Stdout receives the standard output in addition to the captured stdout file.
	Stdout io.Writer
	// Timeout bounds the run time, no limit when zero.
	Timeout time.Duration
}

// String returns the command line as it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Result holds the exit status and the files with captured output.
type Result struct {
	ExitCode   int
	StdoutFile string
	StderrFile string
}

// ExitError is returned when a tool exits with non-zero status.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
}

// TimeoutError is returned when a tool does not finish within Command.Timeout.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q did not finish within %s", e.Command, e.Timeout)
}
