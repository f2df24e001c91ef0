package executor

import (
	"io/ioutil"
	"os"
	"path"

	"github.com/pkg/errors"
)

func getBinaryNameFromCommand(command string) (string, error) {
	_, name := path.Split(command)
	if name == "" {
		return "", errors.Errorf("failed to extract command name from %q", command)
	}
	return name, nil
}

func createExecutorOutputFiles(outputRoot, command, prefix string) (stdout, stderr *os.File, err error) {
	if len(command) == 0 {
		return nil, nil, errors.New("empty command string")
	}

	commandName, err := getBinaryNameFromCommand(command)
	if err != nil {
		return nil, nil, err
	}

	outputDir, err := ioutil.TempDir(outputRoot, prefix+"_"+commandName+"_")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create output directory for %s", commandName)
	}

	stdoutFileName := path.Join(outputDir, "stdout")
	stdout, err = os.Create(stdoutFileName)
	if err != nil {
		return nil, nil, err
	}

	stderr, err = os.Create(path.Join(outputDir, "stderr"))
	if err != nil {
		stdout.Close()
		os.Remove(stdoutFileName)
		return nil, nil, err
	}

	return stdout, stderr, nil
}

// EraseOutput removes the directory holding captured stdout and stderr.
func (r Result) EraseOutput() error {
	if r.StdoutFile == "" {
		return nil
	}
	return os.RemoveAll(path.Dir(r.StdoutFile))
}
