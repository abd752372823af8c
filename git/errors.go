package git

import (
	"errors"
	"fmt"
)

var (
	ErrCommandFailed    = errors.New("external command failed")
	ErrUnexpectedOutput = fmt.Errorf("%w: unexpected output", ErrCommandFailed)
)

type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command {%s} failed", e.Command)
	if e.ExitCode >= 0 {
		msg = fmt.Sprintf("command {%s} exited with code %d", e.Command, e.ExitCode)
	}
	if e.Stderr != "" {
		return msg + ": " + e.Stderr
	}
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.err
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
