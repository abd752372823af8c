package detector

import (
	"fmt"

	"github.com/mrdunski/addon-changes/git"
)

type Config struct {
	AddonsDir      string   `arg:"" name:"addons-dir" help:"Directory containing addons." type:"path"`
	DryRun         bool     `help:"Compare with remotes/origin/main. Disable to compare GIT_PREVIOUS_COMMIT with GIT_COMMIT." default:"true" negatable:"" group:"Detection"`
	PreviousCommit string   `help:"Previously built commit (deploy mode)." env:"GIT_PREVIOUS_COMMIT" optional:"" group:"Detection"`
	Commit         string   `help:"Current commit (deploy mode)." env:"GIT_COMMIT" optional:"" group:"Detection"`
	RepoDir        string   `help:"Directory of the git repository (current directory by default)." optional:"" group:"Detection"`
	GitExecutable  string   `help:"Git executable." env:"GIT_EXECUTABLE" default:"git" group:"Detection"`
	Excludes       []string `name:"exclude" help:"Ignore addon directories by name." optional:"" sep:"none" group:"Detection"`
}

func (c Config) Validate() error {
	if c.AddonsDir == "" {
		return fmt.Errorf("%w: addons dir is required", ErrConfiguration)
	}
	if c.DryRun {
		return nil
	}
	if c.PreviousCommit == "" {
		return fmt.Errorf("%w: GIT_PREVIOUS_COMMIT is required when dry run is disabled", ErrConfiguration)
	}
	if c.Commit == "" {
		return fmt.Errorf("%w: GIT_COMMIT is required when dry run is disabled", ErrConfiguration)
	}

	return nil
}

func (c Config) Range() git.CommitRange {
	if c.DryRun {
		return git.MainBranchRange()
	}

	return git.CommitRange{From: c.PreviousCommit, To: c.Commit}
}

func (c Config) Client(runner git.Runner) git.Client {
	client := git.NewClient(runner, c.RepoDir)
	if c.GitExecutable != "" {
		client = client.WithExecutable(c.GitExecutable)
	}

	return client
}
