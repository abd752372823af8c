package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/mrdunski/addon-changes/cmd/changes/ls"
	"github.com/mrdunski/addon-changes/cmd/revision"
	"github.com/mrdunski/addon-changes/git"
	"github.com/mrdunski/addon-changes/logger"
	"github.com/mrdunski/addon-changes/telemetry"
)

type CLI struct {
	logger.LogConfig
	telemetry.TeleConfig

	Changes struct {
		Ls ls.Cmd `cmd:"" help:"list addons changed by the current change set"`
	} `cmd:"" help:"addon changes detection"`
	Revision struct {
		Short revision.ShortCmd `cmd:"" help:"print abbreviated id of the current revision"`
	} `cmd:"" help:"revision helpers"`
}

func main() {
	cli := CLI{}
	kongCtx := kong.Parse(&cli,
		kong.Name("addon-changes"),
		kong.Description("Detects which addons were changed and how."),
		kong.UsageOnError(),
	)
	kongCtx.FatalIfErrorf(cli.InitLogger(kongCtx))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	recorder := cli.NewRecorder()

	kongCtx.BindTo(ctx, (*context.Context)(nil))
	kongCtx.BindTo(git.ExecRunner{}, (*git.Runner)(nil))
	kongCtx.BindTo(kongCtx.Stdout, (*io.Writer)(nil))

	err := kongCtx.Run()
	recorder.Record()
	stop()
	kongCtx.FatalIfErrorf(err)
}
