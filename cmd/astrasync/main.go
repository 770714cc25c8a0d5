package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/astrasync/astrasync-client/internal/app"
	"github.com/astrasync/astrasync-client/internal/config"
	"github.com/astrasync/astrasync-client/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "astrasync: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("astrasync starting", "config", cfg)

	a, err := app.New(cfg, logger.Sugared{}, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCommand(a).ExecuteContext(ctx)
}

func rootCommand(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "astrasync",
		Short:         "Talks to the AstraSync backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		getEntry(a),
		postEntry(a),
		homeEntry(a),
		healthEntry(a),
		historyEntry(a),
		scoreEntry(a),
		submitEntry(a),
		profileEntry(a),
		syncGoogleFitEntry(a),
	)
	return root
}
