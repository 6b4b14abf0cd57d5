// Package main is the entry point for pyrecheck.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/RastaKolobar/pyre-check/cmd/pyrecheck/commands"
	"github.com/RastaKolobar/pyre-check/internal/app"
	_ "github.com/RastaKolobar/pyre-check/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger isn't available if initialization itself failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error("command failed", "error", err)
		return 1
	}
	return 0
}
