package revision

import (
	"context"
	"fmt"
	"io"

	"github.com/mrdunski/addon-changes/git"
)

type ShortCmd struct {
	Size          int    `help:"Number of characters of the revision id." default:"7"`
	RepoDir       string `help:"Directory of the git repository (current directory by default)." optional:""`
	GitExecutable string `help:"Git executable." env:"GIT_EXECUTABLE" default:"git"`
}

func (c ShortCmd) Run(ctx context.Context, runner git.Runner, out io.Writer) error {
	client := git.NewClient(runner, c.RepoDir)
	if c.GitExecutable != "" {
		client = client.WithExecutable(c.GitExecutable)
	}

	revision, err := client.ShortRevision(ctx, c.Size)
	if err != nil {
		return fmt.Errorf("failed to read revision: %w", err)
	}

	_, err = fmt.Fprintln(out, revision)
	return err
}
