package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dmoncada/tweetscope/cmd"
	"dmoncada/tweetscope/logger"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Cancellation is process-level: a signal cancels the context and the
	// pipeline stops at the next stage boundary; a killed run resumes from
	// the checkpoint on the next invocation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("Pipeline failed")
		os.Exit(1)
	}
}
