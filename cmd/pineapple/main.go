package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a 3- or 5-card row"`
	Deal     DealCmd          `cmd:"" help:"Show the 17-card hand slice for a seed"`
	Settle   SettleCmd        `cmd:"" help:"Settle two complete boards"`
	Simulate SimulateCmd      `cmd:"" help:"Auto-play OFC Pineapple matches"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pineapple"),
		kong.Description("OFC Pineapple engine tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
