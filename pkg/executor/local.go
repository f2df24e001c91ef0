package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Local runs commands on the local machine via exec.Command as current user.
type Local struct {
	// OutputDir is where stdout and stderr of each command are stored,
	// os.TempDir() when empty.
	OutputDir string
}

// NewLocal returns a Local instance.
func NewLocal() Local {
	return Local{}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command and waits for it.
func (l Local) Execute(ctx context.Context, command Command) (Result, error) {
	if command.Path == "" {
		return Result{}, errors.New("empty command")
	}

	outputDir := l.OutputDir
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	stdoutFile, stderrFile, err := createExecutorOutputFiles(outputDir, command.Path, "local")
	if err != nil {
		return Result{}, errors.Wrapf(err, "cannot create output files for %q", command)
	}
	defer stdoutFile.Close()
	defer stderrFile.Close()

	result := Result{
		ExitCode:   -1,
		StdoutFile: stdoutFile.Name(),
		StderrFile: stderrFile.Name(),
	}

	runCtx := ctx
	if command.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, command.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, command.Path, command.Args...)
	cmd.Dir = command.Dir
	cmd.Env = environ(command.Env)
	// Own process group so that children of the tool are killed with it.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// The kill syscall interprets a negated PID N as the process group N belongs to.
		log.Debug("Sending ", syscall.SIGKILL, " to PID ", -cmd.Process.Pid)
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	cmd.Stdout = stdoutFile
	if command.Stdout != nil {
		cmd.Stdout = io.MultiWriter(command.Stdout, stdoutFile)
	}
	cmd.Stderr = stderrFile

	log.Debugf("Starting %q in %q", command, command.Dir)
	err = cmd.Run()

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	// Deadline or cancellation of the caller's context is not a tool timeout.
	if ctx.Err() != nil {
		return result, errors.Wrapf(ctx.Err(), "command %q interrupted", command)
	}
	if runCtx.Err() == context.DeadlineExceeded {
		LogUnsuccessfulExecution(command.String(), l.Name(), result)
		return result, &TimeoutError{Command: command.String(), Timeout: command.Timeout}
	}

	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			LogUnsuccessfulExecution(command.String(), l.Name(), result)
			return result, &ExitError{Command: command.String(), ExitCode: result.ExitCode}
		}
		return result, errors.Wrapf(err, "cannot run %q", command)
	}

	LogSuccessfulExecution(command.String(), l.Name(), result)
	return result, nil
}

// environ merges process environment with extra, extra wins.
func environ(extra map[string]string) []string {
	env := []string{}
	for _, kv := range os.Environ() {
		key := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			key = kv[:i]
		}
		if _, overridden := extra[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}
