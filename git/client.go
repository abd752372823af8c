package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mrdunski/addon-changes/telemetry"
)

const (
	DefaultExecutable        = "git"
	DefaultShortRevisionSize = 7
)

type CommitRange struct {
	From string
	To   string
}

// MainBranchRange compares the tip of origin/main with the current position.
func MainBranchRange() CommitRange {
	return CommitRange{From: "remotes/origin/main", To: "HEAD"}
}

func (r CommitRange) String() string {
	return r.From + "..." + r.To
}

type Client struct {
	runner     Runner
	dir        string
	executable string
}

func NewClient(runner Runner, dir string) Client {
	return Client{
		runner:     runner,
		dir:        dir,
		executable: DefaultExecutable,
	}
}

func (c Client) WithExecutable(executable string) Client {
	c.executable = executable
	return c
}

func (c Client) run(ctx context.Context, args ...string) (string, error) {
	command := Command{Dir: c.dir, Name: c.executable, Args: args}
	out, err := c.runner.Run(ctx, command)
	telemetry.CountGitCommand(args[0], err)
	if err != nil {
		if errors.Is(err, ErrCommandFailed) {
			return "", err
		}
		return "", &CommandError{Command: command.String(), ExitCode: -1, err: err}
	}

	return out, nil
}

// DiffNames lists paths changed in the range, relative to the repository top level.
func (c Client) DiffNames(ctx context.Context, commitRange CommitRange) ([]string, error) {
	out, err := c.run(ctx, "diff", "--name-only", commitRange.String())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, err := unquotePath(line)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, nil
}

// unquotePath decodes paths quoted by git because of core.quotePath.
func unquotePath(line string) (string, error) {
	if !strings.HasPrefix(line, `"`) {
		return line, nil
	}

	name, err := strconv.Unquote(line)
	if err != nil {
		return "", fmt.Errorf("%w: can't decode path {%s}: %v", ErrUnexpectedOutput, line, err)
	}

	return name, nil
}

func (c Client) TopLevel(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}

	topLevel := strings.TrimSpace(out)
	if topLevel == "" || !filepath.IsAbs(topLevel) {
		return "", fmt.Errorf("%w: invalid repository top level {%s}", ErrUnexpectedOutput, topLevel)
	}

	return topLevel, nil
}

func (c Client) ShortRevision(ctx context.Context, size int) (string, error) {
	if size <= 0 {
		size = DefaultShortRevisionSize
	}

	out, err := c.run(ctx, "rev-parse", fmt.Sprintf("--short=%d", size), "HEAD")
	if err != nil {
		return "", err
	}

	revision := strings.TrimSpace(out)
	if revision == "" || strings.ContainsAny(revision, " \t\n") {
		return "", fmt.Errorf("%w: invalid revision {%s}", ErrUnexpectedOutput, revision)
	}
	if len(revision) > size {
		revision = revision[:size]
	}

	return revision, nil
}

// ShortRevision returns the abbreviated id of HEAD in the current directory.
func ShortRevision(ctx context.Context, size int) (string, error) {
	return NewClient(ExecRunner{}, "").ShortRevision(ctx, size)
}
