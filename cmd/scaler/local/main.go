package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, cctx := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	if closeErr := cctx.close(context.Background()); closeErr != nil {
		slog.Error("SETUP: Failed to shut down cleanly", "error", closeErr)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
