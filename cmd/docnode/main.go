package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnode/cmd/docnode/commands"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docnode"),
		kong.Description("Extract inline markdown constructs and render HTML node trees."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Stdout: os.Stdout, Stdin: os.Stdin}
	err := ctx.Run(global, &cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
