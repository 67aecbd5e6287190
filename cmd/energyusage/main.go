package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raterudder/energyusage/pkg/energy"
	"github.com/raterudder/energyusage/pkg/log"
	"github.com/raterudder/energyusage/pkg/server"

	"github.com/levenlabs/go-lflag"
)

func main() {
	// init packages
	calc := energy.Configured()

	// init server
	srv := server.Configured(calc)

	// parse flags
	lflag.Configure()
	logger := log.ConfigureFromFlags(os.Stdout)

	ctx, cancel := signal.NotifyContext(log.With(context.Background(), logger), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", "error", err)
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
