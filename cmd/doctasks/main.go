package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doctasks/cmd/doctasks/commands"
	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/version"
)

func main() {
	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("doctasks"),
		kong.Description("Build, preview and publish the project documentation with mkdocs."),
		kong.UsageOnError(),
		commands.Vars(version.String()),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := kctx.Run(&commands.Global{Context: ctx}, &cli)
	cancel()

	derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
