// Command holocron serves the Holocron REST API.
//
//	holocron            start the HTTP server (same as "holocron serve")
//	holocron migrate    bring the database schema up to date
//	holocron seed [f]   load catalog fixtures from f, or the bundled set
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
