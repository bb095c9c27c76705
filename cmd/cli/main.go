package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hacksnooze/internal/buildinfo"
	"hacksnooze/internal/client/cli"
	"hacksnooze/internal/client/config"
	"hacksnooze/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewConsole(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "could not initialize the app", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
