package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/kxue43/recolor/swap"
	"github.com/kxue43/recolor/terminal"
	"github.com/kxue43/recolor/version"
)

func main() {
	var cmd swap.Cmd

	console := terminal.NewConsole(os.Stdout, os.Stderr, "recolor: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx := kong.Parse(
		&cmd,
		kong.Name("recolor"),
		kong.Description("Swap the green palette for the pink one in every matching file under <root>."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
		kong.Bind(console),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
