// Package main is the entry point for the itdash CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"itdash/internal/backend/googletasks"
	"itdash/internal/cli"
	"itdash/internal/commands"
	"itdash/internal/config"
	"itdash/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, cli.OpenStore)
	dispatcher.SetInput(os.Stdin)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
