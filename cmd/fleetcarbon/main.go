// Command fleetcarbon compares theoretical and real fleet emissions and
// tracks emission-reduction targets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/fleetcarbon/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // Set by the linker

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "[fleetcarbon] Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command, canceling its context on SIGINT or SIGTERM.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version).ExecuteContext(ctx)
}
