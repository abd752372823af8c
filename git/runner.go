//go:generate mockgen -destination=mock_git/runner.go . Runner
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/mrdunski/addon-changes/logger"
)

type Command struct {
	Dir  string
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes a command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, command Command) (string, error)
}

type ExecRunner struct{}

func (r ExecRunner) Run(ctx context.Context, command Command) (string, error) {
	log := logger.WithComponent("git").WithField("command", command.String())

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("Running command")
	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Command:  command.String(),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		log.WithError(err).WithField("stderr", cmdErr.Stderr).Debug("Command failed")
		return "", cmdErr
	}

	return stdout.String(), nil
}
