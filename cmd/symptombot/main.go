package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(".env").ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			log.Warn().Err(err).Msg("interrupted")
		} else {
			log.Error().Err(err).Msg("symptombot failed")
		}
		cancel()
		os.Exit(1)
	}
}
