// Unix/Darwin signal handling. SIGINT (Ctrl+C) and SIGTERM both cancel the
// run; a generate in progress stops before the next colorset and watch mode
// exits.

//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
