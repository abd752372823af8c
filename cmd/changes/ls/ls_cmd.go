package ls

import (
	"context"
	"fmt"
	"io"

	"github.com/mrdunski/addon-changes/detector"
	"github.com/mrdunski/addon-changes/git"
	"github.com/mrdunski/addon-changes/telemetry"
)

type Cmd struct {
	detector.Config
	Digest bool   `help:"Print content digest of every changed addon." optional:""`
	Output string `help:"Output format." short:"o" default:"text" enum:"text,json,yaml"`
}

func (c Cmd) Run(ctx context.Context, runner git.Runner, out io.Writer) error {
	d, err := detector.New(c.Config, runner)
	if err != nil {
		return err
	}

	result, err := d.ChangedAddonsByType(ctx)
	if err != nil {
		return fmt.Errorf("failed to detect changed addons: %w", err)
	}
	telemetry.ObserveChangedAddons(result)

	r, err := newReport(result, c.Digest)
	if err != nil {
		return err
	}

	return r.write(out, c.Output)
}
