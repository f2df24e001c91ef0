package executor

import (
	"bufio"
	"fmt"
	"math/rand"
	"strings"

	"github.com/briandobbins/CESM-postprocessing/pkg/utils/fs"
	"github.com/sirupsen/logrus"
)

// LogSuccessfulExecution is helper function for logging standard output and standard error
// file names.
func LogSuccessfulExecution(whatWasExecuted string, whereWasExecuted string, result Result) {
	id := rand.Intn(9999)

	logrus.Debugf("%4d Process %q on %q has ended", id, whatWasExecuted, whereWasExecuted)
	logrus.Debugf("%4d Stdout stored in %q", id, result.StdoutFile)
	logrus.Debugf("%4d Stderr stored in %q", id, result.StderrFile)
	logrus.Debugf("%4d Exit code: %d", id, result.ExitCode)
}

// LogUnsuccessfulExecution is helper function for logging tails of standard output and
// standard error of failed commands.
func LogUnsuccessfulExecution(whatWasExecuted string, whereWasExecuted string, result Result) {
	lineCount := 3
	stdoutTail, err := fs.ReadTail(result.StdoutFile, lineCount)
	if err != nil {
		stdoutTail = fmt.Sprintf("%v", err)
	}
	stderrTail, err := fs.ReadTail(result.StderrFile, lineCount)
	if err != nil {
		stderrTail = fmt.Sprintf("%v", err)
	}

	id := rand.Intn(9999)
	logrus.Errorf("%4d Command %q might have ended prematurely on %q", id, whatWasExecuted, whereWasExecuted)
	logrus.Errorf("%4d Stdout stored in %q", id, result.StdoutFile)
	logrus.Errorf("%4d Stderr stored in %q", id, result.StderrFile)
	logrus.Errorf("%4d Last %d lines of stdout", id, lineCount)
	ErrorLogLines(strings.NewReader(stdoutTail), id)
	logrus.Errorf("%4d Last %d lines of stderr", id, lineCount)
	ErrorLogLines(strings.NewReader(stderrTail), id)
	logrus.Errorf("%4d Exit code: %d", id, result.ExitCode)
}

// ErrorLogLines takes reader and some ID and prints each line
// from reader in a separate logrus.Errorf("%4d <line>", id, line),
// since logrus does not support multi-line logs.
func ErrorLogLines(r *strings.Reader, logID int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logrus.Errorf("%4d %s", logID, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logrus.Errorf("%4d Printing from reader failed: %q", logID, err.Error())
	}
}
