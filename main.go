package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"fractalglass/asset"
	"fractalglass/cli"
	"fractalglass/misc"
)

func RunWindowed(ctx context.Context, opts cli.Options) error {
	InitClipboardManager()

	shader, err := LoadGlassShader("")
	if err != nil {
		return err
	}

	stage := NewKageStage(shader, opts.ClearColor)

	app, err := NewApp(opts, stage)
	if err != nil {
		return err
	}

	if opts.HotReload {
		DebugPutsPersist("hot reload", opts.ShaderPath)
	}

	// the first frames stay blank until the image arrives
	app.Controller.Watch(asset.Load(ctx, opts.ImagePath))

	return app.Run(ctx, app.Controller)
}

func main() {
	opts, err := cli.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}

	if opts.PProf {
		StartPProf()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Headless {
		err = RunHeadless(ctx, opts)
	} else {
		err = RunWindowed(ctx, opts)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		misc.ErrLogger.Fatal(err)
	}
}
